package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/putraaxzy/Artemis-PKL/internal/dto"
	"github.com/putraaxzy/Artemis-PKL/internal/model"
)

func seedTugasPenugasan(tugasRepo *mockTugasRepo, penugasanRepo *mockPenugasanRepo, guruID, siswaID uint, tipe string) (*model.Tugas, *model.Penugasan) {
	tugas := &model.Tugas{
		Judul:           "Laporan Praktikum",
		IDGuru:          guruID,
		Target:          model.TargetSiswa,
		TipePengumpulan: tipe,
	}
	tugas.ID = tugasRepo.nextID
	tugasRepo.nextID++
	tugasRepo.tugas[tugas.ID] = tugas

	p := penugasanRepo.add(&model.Penugasan{
		IDTugas: tugas.ID,
		IDSiswa: siswaID,
		Status:  model.StatusPending,
		Tugas:   tugas,
	})
	return tugas, p
}

func TestSubmitPendingKeDikirim(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	tugas, _ := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	svc := NewPenugasanService(repo, zap.NewNop())

	got, err := svc.Submit(context.Background(), tugas.ID, Actor{ID: 2, Role: model.RoleSiswa}, "https://drive.google.com/abc")
	if err != nil {
		t.Fatalf("Submit gagal: %v", err)
	}
	if got.Status != model.StatusDikirim {
		t.Errorf("harap status %q, dapat=%q", model.StatusDikirim, got.Status)
	}
	if got.LinkDrive != "https://drive.google.com/abc" {
		t.Errorf("harap link tersimpan, dapat=%q", got.LinkDrive)
	}
	if got.TanggalPengumpulan == nil {
		t.Error("harap tanggal pengumpulan terisi")
	}
}

func TestSubmitLinkKosongTipeLink(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	tugas, p := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	svc := NewPenugasanService(repo, zap.NewNop())

	_, err := svc.Submit(context.Background(), tugas.ID, Actor{ID: 2, Role: model.RoleSiswa}, "   ")
	if !errors.Is(err, ErrLinkWajib) {
		t.Fatalf("harap ErrLinkWajib, dapat=%v", err)
	}
	if penugasanRepo.rows[p.ID].Status != model.StatusPending {
		t.Error("status berubah padahal validasi gagal")
	}
}

func TestSubmitLangsungTanpaLink(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	tugas, _ := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLangsung)
	svc := NewPenugasanService(repo, zap.NewNop())

	got, err := svc.Submit(context.Background(), tugas.ID, Actor{ID: 2, Role: model.RoleSiswa}, "")
	if err != nil {
		t.Fatalf("Submit gagal: %v", err)
	}
	if got.Status != model.StatusDikirim {
		t.Errorf("harap status %q, dapat=%q", model.StatusDikirim, got.Status)
	}
}

func TestSubmitLangsungLinkDiabaikan(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	tugas, _ := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLangsung)
	svc := NewPenugasanService(repo, zap.NewNop())

	got, err := svc.Submit(context.Background(), tugas.ID, Actor{ID: 2, Role: model.RoleSiswa}, "https://drive.google.com/xyz")
	if err != nil {
		t.Fatalf("Submit gagal: %v", err)
	}
	if got.LinkDrive != "" {
		t.Errorf("harap link kosong untuk pengumpulan langsung, dapat=%q", got.LinkDrive)
	}
}

func TestSubmitBukanSiswa(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	tugas, _ := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	svc := NewPenugasanService(repo, zap.NewNop())

	_, err := svc.Submit(context.Background(), tugas.ID, Actor{ID: 1, Role: model.RoleGuru}, "https://x")
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("harap ErrNotAuthorized, dapat=%v", err)
	}
}

func TestSubmitBukanTargetTugas(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	tugas, _ := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	svc := NewPenugasanService(repo, zap.NewNop())

	// siswa 99 tidak pernah ditugasi; penolakan generik, bukan not found
	_, err := svc.Submit(context.Background(), tugas.ID, Actor{ID: 99, Role: model.RoleSiswa}, "https://x")
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("harap ErrNotAuthorized, dapat=%v", err)
	}
}

func TestSubmitDuaKali(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	tugas, _ := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	svc := NewPenugasanService(repo, zap.NewNop())
	actor := Actor{ID: 2, Role: model.RoleSiswa}

	if _, err := svc.Submit(context.Background(), tugas.ID, actor, "https://a"); err != nil {
		t.Fatalf("Submit pertama gagal: %v", err)
	}
	_, err := svc.Submit(context.Background(), tugas.ID, actor, "https://b")
	if !errors.Is(err, ErrTransisiStatus) {
		t.Fatalf("harap ErrTransisiStatus, dapat=%v", err)
	}
}

func TestGradeSelesai(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	_, p := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	penugasanRepo.rows[p.ID].Status = model.StatusDikirim
	svc := NewPenugasanService(repo, zap.NewNop())

	nilai := 85
	got, err := svc.Grade(context.Background(), p.ID, Actor{ID: 1, Role: model.RoleGuru}, &dto.GradeRequest{
		Status:      model.StatusSelesai,
		Nilai:       &nilai,
		CatatanGuru: "Bagus, tingkatkan",
	})
	if err != nil {
		t.Fatalf("Grade gagal: %v", err)
	}
	if got.Status != model.StatusSelesai {
		t.Errorf("harap status %q, dapat=%q", model.StatusSelesai, got.Status)
	}
	if got.Nilai == nil || *got.Nilai != 85 {
		t.Errorf("harap nilai 85, dapat=%v", got.Nilai)
	}
	if got.CatatanGuru != "Bagus, tingkatkan" {
		t.Errorf("harap catatan tersimpan, dapat=%q", got.CatatanGuru)
	}
}

func TestGradeSelesaiTanpaNilai(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	_, p := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	penugasanRepo.rows[p.ID].Status = model.StatusDikirim
	svc := NewPenugasanService(repo, zap.NewNop())

	_, err := svc.Grade(context.Background(), p.ID, Actor{ID: 1, Role: model.RoleGuru}, &dto.GradeRequest{
		Status: model.StatusSelesai,
	})
	if !errors.Is(err, ErrNilaiWajib) {
		t.Fatalf("harap ErrNilaiWajib, dapat=%v", err)
	}
}

func TestGradeNilaiDiLuarRentang(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	_, p := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	penugasanRepo.rows[p.ID].Status = model.StatusDikirim
	svc := NewPenugasanService(repo, zap.NewNop())

	for _, nilai := range []int{-1, 101} {
		n := nilai
		_, err := svc.Grade(context.Background(), p.ID, Actor{ID: 1, Role: model.RoleGuru}, &dto.GradeRequest{
			Status: model.StatusSelesai,
			Nilai:  &n,
		})
		if !errors.Is(err, ErrNilaiRentang) {
			t.Fatalf("nilai=%d: harap ErrNilaiRentang, dapat=%v", nilai, err)
		}
	}
	if penugasanRepo.rows[p.ID].Status != model.StatusDikirim {
		t.Error("status berubah padahal nilai tidak valid")
	}
}

func TestGradeNilaiBatas(t *testing.T) {
	// 0 dan 100 keduanya sah
	for _, nilai := range []int{0, 100} {
		repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
		_, p := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
		penugasanRepo.rows[p.ID].Status = model.StatusDikirim
		svc := NewPenugasanService(repo, zap.NewNop())

		n := nilai
		got, err := svc.Grade(context.Background(), p.ID, Actor{ID: 1, Role: model.RoleGuru}, &dto.GradeRequest{
			Status: model.StatusSelesai,
			Nilai:  &n,
		})
		if err != nil {
			t.Fatalf("nilai=%d: Grade gagal: %v", nilai, err)
		}
		if got.Nilai == nil || *got.Nilai != nilai {
			t.Errorf("harap nilai %d, dapat=%v", nilai, got.Nilai)
		}
	}
}

func TestGradeDitolakBuangNilai(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	_, p := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	penugasanRepo.rows[p.ID].Status = model.StatusDikirim
	svc := NewPenugasanService(repo, zap.NewNop())

	nilai := 70
	got, err := svc.Grade(context.Background(), p.ID, Actor{ID: 1, Role: model.RoleGuru}, &dto.GradeRequest{
		Status:      model.StatusDitolak,
		Nilai:       &nilai,
		CatatanGuru: "Format laporan salah",
	})
	if err != nil {
		t.Fatalf("Grade gagal: %v", err)
	}
	if got.Status != model.StatusDitolak {
		t.Errorf("harap status %q, dapat=%q", model.StatusDitolak, got.Status)
	}
	if got.Nilai != nil {
		t.Errorf("harap nilai dibuang untuk ditolak, dapat=%v", *got.Nilai)
	}
}

func TestGradeDariPending(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	_, p := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	svc := NewPenugasanService(repo, zap.NewNop())

	nilai := 90
	_, err := svc.Grade(context.Background(), p.ID, Actor{ID: 1, Role: model.RoleGuru}, &dto.GradeRequest{
		Status: model.StatusSelesai,
		Nilai:  &nilai,
	})
	if !errors.Is(err, ErrTransisiStatus) {
		t.Fatalf("harap ErrTransisiStatus, dapat=%v", err)
	}
}

func TestGradeSetelahDitolak(t *testing.T) {
	// ditolak tidak punya transisi keluar
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	_, p := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	penugasanRepo.rows[p.ID].Status = model.StatusDitolak
	svc := NewPenugasanService(repo, zap.NewNop())

	nilai := 80
	_, err := svc.Grade(context.Background(), p.ID, Actor{ID: 1, Role: model.RoleGuru}, &dto.GradeRequest{
		Status: model.StatusSelesai,
		Nilai:  &nilai,
	})
	if !errors.Is(err, ErrTransisiStatus) {
		t.Fatalf("harap ErrTransisiStatus, dapat=%v", err)
	}
}

func TestGradeBukanPemilik(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	_, p := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	penugasanRepo.rows[p.ID].Status = model.StatusDikirim
	svc := NewPenugasanService(repo, zap.NewNop())

	nilai := 90
	_, err := svc.Grade(context.Background(), p.ID, Actor{ID: 7, Role: model.RoleGuru}, &dto.GradeRequest{
		Status: model.StatusSelesai,
		Nilai:  &nilai,
	})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("harap ErrNotAuthorized, dapat=%v", err)
	}
}

func TestGradePenugasanTidakAda(t *testing.T) {
	repo, _, _, _, _ := newTestRepo()
	svc := NewPenugasanService(repo, zap.NewNop())

	nilai := 90
	_, err := svc.Grade(context.Background(), 555, Actor{ID: 1, Role: model.RoleGuru}, &dto.GradeRequest{
		Status: model.StatusSelesai,
		Nilai:  &nilai,
	})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("harap ErrNotAuthorized, dapat=%v", err)
	}
}

func TestStatistics(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	tugas, _ := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	penugasanRepo.add(&model.Penugasan{IDTugas: tugas.ID, IDSiswa: 3, Status: model.StatusDikirim, Tugas: tugas})
	penugasanRepo.add(&model.Penugasan{IDTugas: tugas.ID, IDSiswa: 4, Status: model.StatusSelesai, Tugas: tugas})
	penugasanRepo.add(&model.Penugasan{IDTugas: tugas.ID, IDSiswa: 5, Status: model.StatusSelesai, Tugas: tugas})

	svc := NewPenugasanService(repo, zap.NewNop())
	stat, err := svc.Statistics(context.Background(), tugas.ID)
	if err != nil {
		t.Fatalf("Statistics gagal: %v", err)
	}
	if stat.Pending != 1 || stat.Dikirim != 1 || stat.Selesai != 2 || stat.Ditolak != 0 {
		t.Errorf("rekap salah: %+v", stat)
	}
	if stat.TotalSiswa != 4 {
		t.Errorf("harap total 4, dapat=%d", stat.TotalSiswa)
	}
}
