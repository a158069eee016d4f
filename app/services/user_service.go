package services

import (
	"fmt"
	"net/http"

	"github.com/smartbytes/canteen/app/models"
)

// UserService talks to /users (admin surface).
type UserService struct {
	c *Client
}

func NewUserService(c *Client) *UserService {
	return &UserService{c: c}
}

// All lists every registered account.
func (s *UserService) All() ([]models.User, error) {
	resp, err := s.c.do(http.MethodGet, "/users/all", nil, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, decodeError(resp)
	}

	var users []models.User
	if err := resp.JSON(&users); err != nil {
		return nil, err
	}
	return users, nil
}

// ByID fetches one account.
func (s *UserService) ByID(id int64) (models.User, error) {
	var user models.User

	resp, err := s.c.do(http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil)
	if err != nil {
		return user, err
	}
	if !resp.OK() {
		return user, decodeError(resp)
	}
	if err := resp.JSON(&user); err != nil {
		return user, err
	}
	return user, nil
}

// UpdateRole reassigns an account's role.
func (s *UserService) UpdateRole(id int64, newRole string) (models.User, error) {
	var user models.User

	resp, err := s.c.do(http.MethodPut, fmt.Sprintf("/users/%d/role", id), struct{}{},
		map[string]string{"newRole": newRole})
	if err != nil {
		return user, err
	}
	if !resp.OK() {
		return user, decodeError(resp)
	}
	if err := resp.JSON(&user); err != nil {
		return user, err
	}
	return user, nil
}

// Delete removes an account.
func (s *UserService) Delete(id int64) error {
	resp, err := s.c.do(http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return decodeError(resp)
	}
	return nil
}
