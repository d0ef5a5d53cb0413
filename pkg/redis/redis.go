package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/putraaxzy/Artemis-PKL/config"
)

// Client pembungkus koneksi Redis.
// Dipakai untuk blacklist token (logout) dan antrean pengingat WA bot.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient membuka koneksi Redis dan melakukan ping
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("koneksi Redis gagal: %w", err)
	}

	logger.Info("Redis terhubung", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── blacklist token ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken memasukkan JTI ke blacklist dengan TTL sisa masa berlaku token
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // token sudah kedaluwarsa, tidak perlu di-blacklist
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted memeriksa apakah JTI ada di blacklist
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── antrean pengingat ──

const reminderQueueKey = "reminder:queue"

// ReminderJob satu pekerjaan pengingat yang diambil WA bot dari antrean
type ReminderJob struct {
	IDTugas uint   `json:"id_tugas"`
	IDSiswa uint   `json:"id_siswa"`
	Telepon string `json:"telepon"`
	Judul   string `json:"judul"`
}

// EnqueueReminder mendorong pekerjaan pengingat ke antrean bot
func (c *Client) EnqueueReminder(ctx context.Context, job *ReminderJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return c.rdb.LPush(ctx, reminderQueueKey, payload).Err()
}

// Close menutup koneksi Redis
func (c *Client) Close() error {
	return c.rdb.Close()
}
