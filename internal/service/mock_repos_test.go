package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/putraaxzy/Artemis-PKL/internal/model"
	"github.com/putraaxzy/Artemis-PKL/internal/repository"
)

// Mock repository berbasis map, cukup untuk menguji logika service tanpa
// database sungguhan.

// ── user ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[uint]*model.User{}, nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ListSiswa(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range m.users {
		if u.Role == model.RoleSiswa {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockUserRepo) ListSiswaByIDs(_ context.Context, ids []uint) ([]model.User, error) {
	var out []model.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok && u.Role == model.RoleSiswa {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) ListSiswaByKelas(_ context.Context, kelas, jurusan string) ([]model.User, error) {
	var out []model.User
	for _, u := range m.users {
		if u.Role == model.RoleSiswa && u.Kelas == kelas && (jurusan == "" || u.Jurusan == jurusan) {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockUserRepo) ListKelas(_ context.Context) ([]repository.KelasRekap, error) {
	count := map[[2]string]int64{}
	for _, u := range m.users {
		if u.Role == model.RoleSiswa {
			count[[2]string{u.Kelas, u.Jurusan}]++
		}
	}
	var out []repository.KelasRekap
	for k, n := range count {
		out = append(out, repository.KelasRekap{Kelas: k[0], Jurusan: k[1], JumlahSiswa: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kelas < out[j].Kelas })
	return out, nil
}

// ── tugas ──

type mockTugasRepo struct {
	tugas     map[uint]*model.Tugas
	penugasan *mockPenugasanRepo
	nextID    uint
}

func newMockTugasRepo(p *mockPenugasanRepo) *mockTugasRepo {
	return &mockTugasRepo{tugas: map[uint]*model.Tugas{}, penugasan: p, nextID: 1}
}

func (m *mockTugasRepo) CreateWithPenugasan(_ context.Context, tugas *model.Tugas, siswaIDs []uint) error {
	tugas.ID = m.nextID
	m.nextID++
	m.tugas[tugas.ID] = tugas
	for _, id := range siswaIDs {
		m.penugasan.add(&model.Penugasan{
			IDTugas: tugas.ID,
			IDSiswa: id,
			Status:  model.StatusPending,
		})
	}
	return nil
}

func (m *mockTugasRepo) GetByID(_ context.Context, id uint) (*model.Tugas, error) {
	t, ok := m.tugas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (m *mockTugasRepo) GetDetail(ctx context.Context, id uint) (*model.Tugas, error) {
	t, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, _ := m.penugasan.ListByTugas(ctx, id)
	cp := *t
	cp.Penugasan = rows
	return &cp, nil
}

func (m *mockTugasRepo) ListByGuru(_ context.Context, guruID uint) ([]model.Tugas, error) {
	var out []model.Tugas
	for _, t := range m.tugas {
		if t.IDGuru == guruID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockTugasRepo) Update(_ context.Context, tugas *model.Tugas) error {
	if _, ok := m.tugas[tugas.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.tugas[tugas.ID] = tugas
	return nil
}

func (m *mockTugasRepo) Delete(_ context.Context, id uint) error {
	delete(m.tugas, id)
	for pid, p := range m.penugasan.rows {
		if p.IDTugas == id {
			delete(m.penugasan.rows, pid)
		}
	}
	return nil
}

// ── penugasan ──

type mockPenugasanRepo struct {
	rows   map[uint]*model.Penugasan
	nextID uint
}

func newMockPenugasanRepo() *mockPenugasanRepo {
	return &mockPenugasanRepo{rows: map[uint]*model.Penugasan{}, nextID: 1}
}

func (m *mockPenugasanRepo) add(p *model.Penugasan) *model.Penugasan {
	p.ID = m.nextID
	m.nextID++
	m.rows[p.ID] = p
	return p
}

func (m *mockPenugasanRepo) GetByID(_ context.Context, id uint) (*model.Penugasan, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockPenugasanRepo) GetByTugasSiswa(_ context.Context, tugasID, siswaID uint) (*model.Penugasan, error) {
	for _, p := range m.rows {
		if p.IDTugas == tugasID && p.IDSiswa == siswaID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPenugasanRepo) ListByTugas(_ context.Context, tugasID uint) ([]model.Penugasan, error) {
	var out []model.Penugasan
	for _, p := range m.rows {
		if p.IDTugas == tugasID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockPenugasanRepo) ListByTugasStatus(ctx context.Context, tugasID uint, status string) ([]model.Penugasan, error) {
	all, _ := m.ListByTugas(ctx, tugasID)
	var out []model.Penugasan
	for _, p := range all {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPenugasanRepo) ListBySiswa(_ context.Context, siswaID uint) ([]model.Penugasan, error) {
	var out []model.Penugasan
	for _, p := range m.rows {
		if p.IDSiswa == siswaID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdateStatusIf meniru UPDATE bersyarat: baris hanya berubah bila status
// saat ini sama dengan fromStatus.
func (m *mockPenugasanRepo) UpdateStatusIf(_ context.Context, id uint, fromStatus string, updates map[string]interface{}) (int64, error) {
	p, ok := m.rows[id]
	if !ok || p.Status != fromStatus {
		return 0, nil
	}
	if v, ok := updates["status"]; ok {
		p.Status = v.(string)
	}
	if v, ok := updates["link_drive"]; ok {
		p.LinkDrive = v.(string)
	}
	if v, ok := updates["tanggal_pengumpulan"]; ok {
		t := v.(time.Time)
		p.TanggalPengumpulan = &t
	}
	if v, ok := updates["nilai"]; ok {
		if v == nil {
			p.Nilai = nil
		} else {
			p.Nilai = v.(*int)
		}
	}
	if v, ok := updates["catatan_guru"]; ok {
		p.CatatanGuru = v.(string)
	}
	return 1, nil
}

func (m *mockPenugasanRepo) CountByStatus(ctx context.Context, tugasID uint) (map[string]int64, error) {
	all, _ := m.ListByTugas(ctx, tugasID)
	out := map[string]int64{}
	for _, p := range all {
		out[p.Status]++
	}
	return out, nil
}

// ── reminder ──

type mockReminderRepo struct {
	logs   []model.ReminderLog
	nextID uint
}

func newMockReminderRepo() *mockReminderRepo {
	return &mockReminderRepo{nextID: 1}
}

func (m *mockReminderRepo) Create(_ context.Context, log *model.ReminderLog) error {
	log.ID = m.nextID
	m.nextID++
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockReminderRepo) ListByTugas(_ context.Context, tugasID uint) ([]model.ReminderLog, error) {
	var out []model.ReminderLog
	for i := len(m.logs) - 1; i >= 0; i-- {
		if m.logs[i].IDTugas == tugasID {
			out = append(out, m.logs[i])
		}
	}
	return out, nil
}

// newTestRepo merakit agregat repository berisi mock di atas.
func newTestRepo() (*repository.Repository, *mockUserRepo, *mockTugasRepo, *mockPenugasanRepo, *mockReminderRepo) {
	users := newMockUserRepo()
	penugasan := newMockPenugasanRepo()
	tugas := newMockTugasRepo(penugasan)
	reminder := newMockReminderRepo()
	repo := &repository.Repository{
		User:      users,
		Tugas:     tugas,
		Penugasan: penugasan,
		Reminder:  reminder,
	}
	return repo, users, tugas, penugasan, reminder
}
