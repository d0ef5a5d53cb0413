package model

// ── Role pengguna ──

const (
	RoleGuru  = "guru"
	RoleSiswa = "siswa"
)

// User tabel users: guru dan siswa
type User struct {
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	Name         string `gorm:"type:varchar(100);not null"            json:"name"`
	Telepon      string `gorm:"type:varchar(20)"                      json:"telepon"`
	PasswordHash string `gorm:"type:varchar(255);not null"            json:"-"`
	Role         string `gorm:"type:varchar(10);not null"             json:"role"` // guru | siswa
	Kelas        string `gorm:"type:varchar(20)"                      json:"kelas,omitempty"`   // hanya siswa
	Jurusan      string `gorm:"type:varchar(50)"                      json:"jurusan,omitempty"` // hanya siswa
	BaseModel
}

// TableName nama tabel
func (User) TableName() string { return "users" }
