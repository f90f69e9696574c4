package services

import (
	"errors"

	"github.com/ahmedxgouda/LittleLemon/entity"
	"github.com/ahmedxgouda/LittleLemon/repository"
	"gorm.io/gorm"
)

// RoleService is the role resolver and the manager-facing group assignment
// surface. Resolution is a pure lookup; a provider failure propagates as an
// infrastructure error, not a domain one.
type RoleService struct {
	UserRepo *repository.UserRepository
}

func NewRoleService(ur *repository.UserRepository) *RoleService {
	return &RoleService{UserRepo: ur}
}

func (s *RoleService) RolesOf(userID uint) (entity.RoleSet, error) {
	groups, err := s.UserRepo.GroupsOf(userID)
	if err != nil {
		return entity.RoleSet{}, err
	}
	return entity.RolesFromGroups(groups), nil
}

// ----- group assignment (manager only, enforced at the route) -----

func (s *RoleService) UsersInGroup(groupName string) ([]entity.User, error) {
	return s.UserRepo.UsersInGroup(groupName)
}

func (s *RoleService) AddUserToGroup(username, groupName string) (*entity.User, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.UserRepo.AddToGroup(user, groupName); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *RoleService) RemoveUserFromGroup(userID uint, groupName string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	in, err := s.UserRepo.InGroup(userID, groupName)
	if err != nil {
		return err
	}
	if !in {
		return ErrNotFound
	}
	return s.UserRepo.RemoveFromGroup(user, groupName)
}
