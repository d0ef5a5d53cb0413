package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/putraaxzy/Artemis-PKL/internal/model"
)

func TestExportTugasBukanPemilik(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	tugas, _ := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	svc := NewExportService(repo, zap.NewNop())

	_, _, err := svc.ExportTugas(context.Background(), tugas.ID, Actor{ID: 7, Role: model.RoleGuru})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("harap ErrNotAuthorized, dapat=%v", err)
	}
}

func TestExportTugasOlehSiswa(t *testing.T) {
	repo, _, _, _, _ := newTestRepo()
	svc := NewExportService(repo, zap.NewNop())

	_, _, err := svc.ExportTugas(context.Background(), 1, Actor{ID: 2, Role: model.RoleSiswa})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("harap ErrNotAuthorized, dapat=%v", err)
	}
}

func TestExportTugasTidakAda(t *testing.T) {
	repo, _, _, _, _ := newTestRepo()
	svc := NewExportService(repo, zap.NewNop())

	_, _, err := svc.ExportTugas(context.Background(), 404, Actor{ID: 1, Role: model.RoleGuru})
	if !errors.Is(err, ErrTugasNotFound) {
		t.Fatalf("harap ErrTugasNotFound, dapat=%v", err)
	}
}

func TestExportTugasIsiSheet(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	tugas, p := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)

	nilai := 90
	dikumpulkan := time.Date(2024, 4, 20, 9, 30, 0, 0, time.Local)
	row := penugasanRepo.rows[p.ID]
	row.Status = model.StatusSelesai
	row.LinkDrive = "https://drive.google.com/abc"
	row.TanggalPengumpulan = &dikumpulkan
	row.Nilai = &nilai
	row.CatatanGuru = "Kerja bagus"
	row.Siswa = &model.User{
		Username: "andi",
		Name:     "Andi Wijaya",
		Telepon:  "0812",
		Role:     model.RoleSiswa,
		Kelas:    "XII",
		Jurusan:  "RPL",
	}
	row.Siswa.ID = 2

	svc := NewExportService(repo, zap.NewNop())
	buf, filename, err := svc.ExportTugas(context.Background(), tugas.ID, Actor{ID: 1, Role: model.RoleGuru})
	if err != nil {
		t.Fatalf("ExportTugas gagal: %v", err)
	}
	if filename != "tugas_Laporan_Praktikum.xlsx" {
		t.Errorf("nama file salah: %q", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("hasil bukan xlsx valid: %v", err)
	}
	defer f.Close()

	const sheet = "Data Tugas Siswa"
	cek := map[string]string{
		"A1": "No",
		"H1": "Status",
		"L1": "Catatan Guru",
		"C2": "andi",
		"D2": "Andi Wijaya",
		"H2": "Selesai",
		"I2": "https://drive.google.com/abc",
		"J2": "20/04/2024 09:30",
		"K2": "90",
		"L2": "Kerja bagus",
	}
	for cell, want := range cek {
		got, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("baca sel %s gagal: %v", cell, err)
		}
		if got != want {
			t.Errorf("sel %s: harap %q, dapat=%q", cell, want, got)
		}
	}
}

func TestExportTugasZebraKolomTengah(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	tugas, p := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	penugasanRepo.rows[p.ID].Siswa = &model.User{Username: "citra", Name: "Citra", Role: model.RoleSiswa}

	svc := NewExportService(repo, zap.NewNop())
	buf, _, err := svc.ExportTugas(context.Background(), tugas.ID, Actor{ID: 1, Role: model.RoleGuru})
	if err != nil {
		t.Fatalf("ExportTugas gagal: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("hasil bukan xlsx valid: %v", err)
	}
	defer f.Close()

	// baris 2 genap: kolom rata tengah tetap membawa fill zebra
	idx, err := f.GetCellStyle("Data Tugas Siswa", "H2")
	if err != nil {
		t.Fatalf("baca gaya sel H2 gagal: %v", err)
	}
	st, err := f.GetStyle(idx)
	if err != nil {
		t.Fatalf("baca definisi gaya gagal: %v", err)
	}
	if st.Alignment == nil || st.Alignment.Horizontal != "center" {
		t.Error("harap kolom H rata tengah")
	}
	zebra := false
	for _, warna := range st.Fill.Color {
		if strings.Contains(strings.ToUpper(warna), "F2F2F2") {
			zebra = true
		}
	}
	if !zebra {
		t.Errorf("harap fill zebra F2F2F2 pada H2, dapat=%v", st.Fill.Color)
	}
}

func TestExportTugasNilaiKosong(t *testing.T) {
	repo, _, tugasRepo, penugasanRepo, _ := newTestRepo()
	tugas, p := seedTugasPenugasan(tugasRepo, penugasanRepo, 1, 2, model.PengumpulanLink)
	penugasanRepo.rows[p.ID].Siswa = &model.User{Username: "budi", Name: "Budi", Role: model.RoleSiswa}

	svc := NewExportService(repo, zap.NewNop())
	buf, _, err := svc.ExportTugas(context.Background(), tugas.ID, Actor{ID: 1, Role: model.RoleGuru})
	if err != nil {
		t.Fatalf("ExportTugas gagal: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("hasil bukan xlsx valid: %v", err)
	}
	defer f.Close()

	// optional kosong ditampilkan sebagai "-"
	for _, cell := range []string{"I2", "J2", "K2", "L2"} {
		got, _ := f.GetCellValue("Data Tugas Siswa", cell)
		if got != "-" {
			t.Errorf("sel %s: harap \"-\", dapat=%q", cell, got)
		}
	}
}
