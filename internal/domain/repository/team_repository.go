package repository

import "github.com/scwellservice/fieldservice-api/internal/domain/entity"

// TeamMemberRepository defines the persistence port for team members.
type TeamMemberRepository interface {
	Create(member *entity.TeamMember) error
	GetByID(id int64) (*entity.TeamMember, error)
	List() ([]*entity.TeamMember, error)
	Update(member *entity.TeamMember) error
	Delete(id int64) error
}
