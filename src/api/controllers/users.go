package controllers

import (
	"context"
	"fmt"

	"backoffice/src/models"
	"backoffice/src/schemas"
	"backoffice/src/utils"

	"golang.org/x/crypto/bcrypt"
)

func (c *Controller) GetAllUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	return c.Users.GetAll(ctx, skip, limit)
}

func (c *Controller) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user, err := c.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NotFound(fmt.Sprintf("user %d not found", id))
	}
	return user, nil
}

func (c *Controller) CreateUser(ctx context.Context, req schemas.UserCreateRequest) (*models.User, error) {
	if err := schemas.Validate.Struct(req); err != nil {
		return nil, utils.BadRequest(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashed),
		IsActive: true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if err := c.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Controller) UpdateUser(ctx context.Context, id int, patch schemas.UserUpdateRequest) (*models.User, error) {
	if err := schemas.Validate.Struct(patch); err != nil {
		return nil, utils.BadRequest(err.Error())
	}

	if patch.Password != nil && *patch.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashedStr := string(hashed)
		patch.Password = &hashedStr
	}

	user, err := c.Users.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NotFound(fmt.Sprintf("user %d not found", id))
	}
	return user, nil
}

func (c *Controller) DeleteUser(ctx context.Context, id int) (*models.User, error) {
	user, err := c.Users.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NotFound(fmt.Sprintf("user %d not found", id))
	}
	return user, nil
}
