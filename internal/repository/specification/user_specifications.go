package specification

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", strings.ToLower(strings.TrimSpace(s.Email)))
}

type ByRoll struct {
	Roll string
}

func (s ByRoll) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("roll = ?", strings.TrimSpace(s.Roll))
}

// ByEmailOrRoll matches an identity that collides on either unique key.
type ByEmailOrRoll struct {
	Email string
	Roll  string
}

func (s ByEmailOrRoll) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ? OR roll = ?",
		strings.ToLower(strings.TrimSpace(s.Email)),
		strings.TrimSpace(s.Roll),
	)
}

// WithoutTeam keeps users that are free to join a team.
type WithoutTeam struct{}

func (s WithoutTeam) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("team_id IS NULL")
}

// DomainsContainAny keeps users whose domain tags intersect Domains.
// An empty list matches nothing.
type DomainsContainAny struct {
	Domains []string
}

func (s DomainsContainAny) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Domains) == 0 {
		return db.Where("1 = 0")
	}

	clauses := make([]string, 0, len(s.Domains))
	args := make([]interface{}, 0, len(s.Domains))
	for _, d := range s.Domains {
		raw, _ := json.Marshal([]string{d})
		clauses = append(clauses, "domains @> CAST(? AS jsonb)")
		args = append(args, string(raw))
	}
	return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

// ProfileSearch is a case-insensitive substring match over the public profile.
type ProfileSearch struct {
	Term string
}

func (s ProfileSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + escapeLike(s.Term) + "%"
	return db.Where(
		"(full_name ILIKE ? OR college ILIKE ? OR email ILIKE ? OR CAST(skills AS text) ILIKE ?)",
		pattern, pattern, pattern, pattern,
	)
}

func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
