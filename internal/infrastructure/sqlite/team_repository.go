package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

var _ repository.TeamMemberRepository = (*TeamRepo)(nil)

const teamCols = `id, name, email, phone, role, created_at`

// TeamRepo implements TeamMemberRepository.
type TeamRepo struct {
	q Querier
}

// NewTeamRepository builds the adapter.
func NewTeamRepository(q Querier) *TeamRepo {
	return &TeamRepo{q: q}
}

// Create persists a new team member.
func (r *TeamRepo) Create(m *entity.TeamMember) error {
	query := `INSERT INTO team_members (` + teamCols + `) VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.q.Exec(query, m.ID, m.Name, m.Email, m.Phone, m.Role, m.CreatedAt); err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}
	return nil
}

// GetByID fetches a team member by id; nil when absent.
func (r *TeamRepo) GetByID(id int64) (*entity.TeamMember, error) {
	var m entity.TeamMember
	if err := sqlx.Get(r.q, &m, `SELECT `+teamCols+` FROM team_members WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return &m, nil
}

// List returns all team members sorted by name.
func (r *TeamRepo) List() ([]*entity.TeamMember, error) {
	var list []*entity.TeamMember
	query := `SELECT ` + teamCols + ` FROM team_members ORDER BY name COLLATE NOCASE`
	if err := sqlx.Select(r.q, &list, query); err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return list, nil
}

// Update rewrites all mutable fields.
func (r *TeamRepo) Update(m *entity.TeamMember) error {
	query := `UPDATE team_members SET name = ?, email = ?, phone = ?, role = ? WHERE id = ?`
	if _, err := r.q.Exec(query, m.Name, m.Email, m.Phone, m.Role, m.ID); err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	return nil
}

// Delete removes the team member. Jobs keep their assigned_to id.
func (r *TeamRepo) Delete(id int64) error {
	if _, err := r.q.Exec(`DELETE FROM team_members WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}
