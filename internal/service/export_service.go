package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/putraaxzy/Artemis-PKL/internal/repository"
)

// ── error modul ekspor ──

var ErrExportGagal = errors.New("Gagal membuat file Excel")

// ExportService ekspor rekap penugasan satu tugas ke Excel (.xlsx).
// Buffer dikembalikan ke handler yang menyiapkan header unduhan.
type ExportService interface {
	ExportTugas(ctx context.Context, tugasID uint, actor Actor) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService membuat ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportTugas ──────────────────────
//
// Format sheet "Data Tugas Siswa":
//   - baris header: tebal, putih di atas biru #4472C4, border tipis
//   - baris data: border tipis abu, zebra #F2F2F2 pada baris genap
//   - lebar kolom tetap, wrap text untuk kolom link dan catatan

func (s *exportService) ExportTugas(ctx context.Context, tugasID uint, actor Actor) (*bytes.Buffer, string, error) {
	if !actor.IsGuru() {
		return nil, "", ErrNotAuthorized
	}

	tugas, err := s.repo.Tugas.GetDetail(ctx, tugasID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrTugasNotFound
		}
		s.logger.Error("gagal mengambil tugas untuk ekspor", zap.Uint("id", tugasID), zap.Error(err))
		return nil, "", err
	}
	if tugas.IDGuru != actor.ID {
		return nil, "", ErrNotAuthorized
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Data Tugas Siswa"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGagal
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// lebar kolom tetap
	widths := []float64{6, 10, 15, 25, 15, 10, 15, 12, 35, 20, 8, 30}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	// baris header
	headings := []string{
		"No", "ID Siswa", "Username", "Nama Siswa", "Telepon", "Kelas",
		"Jurusan", "Status", "Link Drive", "Tanggal Pengumpulan", "Nilai", "Catatan Guru",
	}
	for i, h := range headings {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorder("000000"),
	})
	f.SetCellStyle(sheet, "A1", "L1", headerStyle)
	f.SetRowHeight(sheet, 1, 25)

	// gaya data dalam varian polos dan zebra, karena SetCellStyle menimpa
	// total: fill zebra harus terpasang di gaya kolom itu sendiri
	newDataStyle := func(zebra bool, horizontal string, wrap bool) int {
		st := &excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: horizontal, Vertical: "center", WrapText: wrap},
			Border:    thinBorder("CCCCCC"),
		}
		if zebra {
			st.Fill = excelize.Fill{Type: "pattern", Color: []string{"#F2F2F2"}, Pattern: 1}
		}
		id, _ := f.NewStyle(st)
		return id
	}
	dataStyle := [2]int{newDataStyle(false, "", false), newDataStyle(true, "", false)}
	centerStyle := [2]int{newDataStyle(false, "center", false), newDataStyle(true, "center", false)}
	wrapStyle := [2]int{newDataStyle(false, "", true), newDataStyle(true, "", true)}

	// baris data
	for i := range tugas.Penugasan {
		p := &tugas.Penugasan[i]
		row := i + 2

		nilai := "-"
		if p.Nilai != nil {
			nilai = fmt.Sprintf("%d", *p.Nilai)
		}
		link := p.LinkDrive
		if link == "" {
			link = "-"
		}
		tanggal := "-"
		if p.TanggalPengumpulan != nil {
			tanggal = p.TanggalPengumpulan.Format("02/01/2006 15:04")
		}
		catatan := p.CatatanGuru
		if catatan == "" {
			catatan = "-"
		}

		var idSiswa interface{} = "-"
		username, nama, telepon, kelas, jurusan := "-", "-", "-", "-", "-"
		if p.Siswa != nil {
			idSiswa = p.Siswa.ID
			username = p.Siswa.Username
			nama = p.Siswa.Name
			telepon = p.Siswa.Telepon
			kelas = p.Siswa.Kelas
			jurusan = p.Siswa.Jurusan
		}

		values := []interface{}{
			i + 1, idSiswa, username, nama, telepon, kelas, jurusan,
			ucfirst(p.Status), link, tanggal, nilai, catatan,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}

		// styling baris: zebra untuk baris genap, lalu kolom khusus
		// dengan varian zebra yang sama agar fill tidak hilang
		genap := 0
		if row%2 == 0 {
			genap = 1
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("L%d", row), dataStyle[genap])
		for _, col := range []string{"A", "B", "F", "G", "H", "K"} {
			f.SetCellStyle(sheet, fmt.Sprintf("%s%d", col, row), fmt.Sprintf("%s%d", col, row), centerStyle[genap])
		}
		for _, col := range []string{"I", "L"} {
			f.SetCellStyle(sheet, fmt.Sprintf("%s%d", col, row), fmt.Sprintf("%s%d", col, row), wrapStyle[genap])
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("gagal menulis Excel", zap.Error(err))
		return nil, "", ErrExportGagal
	}

	filename := fmt.Sprintf("tugas_%s.xlsx", strings.ReplaceAll(tugas.Judul, " ", "_"))
	return buf, filename, nil
}

// ── helper ──

func ucfirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func thinBorder(color string) []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		borders = append(borders, excelize.Border{Type: side, Color: color, Style: 1})
	}
	return borders
}
