package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the credential record persisted for each registered account.
// The password hash never leaves the process: it is excluded from JSON
// and handlers expose users through a DTO anyway.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Bank holds the displayed bank name. One row per deployment.
type Bank struct {
	bun.BaseModel `bun:"table:banks,alias:bnk"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Bank          string    `bun:"bank,notnull" json:"bank"`
}

// Title holds the site title. One row per deployment.
type Title struct {
	bun.BaseModel `bun:"table:titles,alias:ttl"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Title         string    `bun:"title,notnull" json:"title"`
}

// About holds the about text. One row per deployment.
type About struct {
	bun.BaseModel `bun:"table:abouts,alias:abt"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	About         string    `bun:"about,notnull" json:"about"`
}

// Fixed singleton keys. Content PUTs upsert against these so concurrent
// writers cannot race a lookup against an insert or delete.
var (
	BankSingletonID  = uuid.NewSHA1(uuid.NameSpaceOID, []byte("landing-api:bank"))
	TitleSingletonID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("landing-api:title"))
	AboutSingletonID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("landing-api:about"))
)
