package usecase

import (
	"strings"
	"time"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/domain"
	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

// TeamUseCase manages the technician roster.
type TeamUseCase struct {
	team     repository.TeamMemberRepository
	counters repository.CounterRepository
}

func NewTeamUseCase(team repository.TeamMemberRepository, counters repository.CounterRepository) *TeamUseCase {
	return &TeamUseCase{team: team, counters: counters}
}

func (uc *TeamUseCase) Create(in dto.CreateTeamMemberRequest) (*entity.TeamMember, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	id, err := uc.counters.Next("team_members")
	if err != nil {
		return nil, err
	}
	member := &entity.TeamMember{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		Email:     in.Email,
		Phone:     in.Phone,
		Role:      in.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.team.Create(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (uc *TeamUseCase) GetByID(id int64) (*entity.TeamMember, error) {
	member, err := uc.team.GetByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrNotFound
	}
	return member, nil
}

func (uc *TeamUseCase) List() ([]*entity.TeamMember, error) {
	return uc.team.List()
}

func (uc *TeamUseCase) Update(id int64, in dto.UpdateTeamMemberRequest) (*entity.TeamMember, error) {
	member, err := uc.team.GetByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		member.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		member.Email = *in.Email
	}
	if in.Phone != nil {
		member.Phone = *in.Phone
	}
	if in.Role != nil {
		member.Role = *in.Role
	}
	if err := uc.team.Update(member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes the member. Jobs assigned to them keep their assigned_to
// value; list views simply stop resolving the name.
func (uc *TeamUseCase) Delete(id int64) error {
	member, err := uc.team.GetByID(id)
	if err != nil {
		return err
	}
	if member == nil {
		return domain.ErrNotFound
	}
	return uc.team.Delete(id)
}
