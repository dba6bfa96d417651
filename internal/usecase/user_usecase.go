package usecase

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	"app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 管理者向けユーザーCRUDと本人のプロフィール更新
type UserUsecase struct {
	users repository.UserRepository
}

// DI
func NewUserUsecase(users repository.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

type AdminCreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
	Address  string
}

// 部分更新。nilの項目は変更しない。
type AdminUpdateUserInput struct {
	Name     *string
	Email    *string
	Role     *string
	Password *string
	Phone    *string
	Address  *string
}

type UpdateProfileInput struct {
	Name    *string
	Address string
	Phone   string
}

// 全ユーザー一覧（新しい順）
func (u *UserUsecase) List(ctx context.Context) ([]UserDTO, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return []UserDTO{}, err
	}

	outs := make([]UserDTO, 0, len(users))
	for i := range users {
		outs = append(outs, toUserDTO(&users[i]))
	}
	return outs, nil
}

func (u *UserUsecase) Create(ctx context.Context, in AdminCreateUserInput) (UserDTO, error) {
	fields := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(in.Email) == "" {
		fields["email"] = "email is required"
	}
	if len(in.Password) < 6 {
		fields["password"] = "password must be at least 6 characters"
	}
	if in.Role != string(model.RoleUser) && in.Role != string(model.RoleAdmin) {
		fields["role"] = "role must be admin or user"
	}
	if len(fields) > 0 {
		return UserDTO{}, NewValidationError(fields)
	}

	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserDTO{}, ErrInternal
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(pwHash),
		Role:         model.Role(in.Role),
		Phone:        in.Phone,
		Address:      in.Address,
	}

	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return UserDTO{}, ErrConflict
		}
		return UserDTO{}, err
	}

	return toUserDTO(user), nil
}

func (u *UserUsecase) Update(ctx context.Context, userID int64, in AdminUpdateUserInput) (UserDTO, error) {
	if userID <= 0 {
		return UserDTO{}, NewValidationError(FieldErrors{"id": "invalid id"})
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return UserDTO{}, err
	}
	if user == nil {
		return UserDTO{}, &NotFoundError{Resource: "user"}
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		if strings.TrimSpace(*in.Email) == "" {
			return UserDTO{}, NewValidationError(FieldErrors{"email": "email must not be empty"})
		}
		user.Email = *in.Email
	}
	if in.Role != nil {
		if *in.Role != string(model.RoleUser) && *in.Role != string(model.RoleAdmin) {
			return UserDTO{}, NewValidationError(FieldErrors{"role": "role must be admin or user"})
		}
		user.Role = model.Role(*in.Role)
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}

	//パスワードは新しい値が来たときだけハッシュして更新
	if in.Password != nil && *in.Password != "" {
		if len(*in.Password) < 6 {
			return UserDTO{}, NewValidationError(FieldErrors{"password": "password must be at least 6 characters"})
		}
		pwHash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return UserDTO{}, ErrInternal
		}
		user.PasswordHash = string(pwHash)
	}

	if err := u.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return UserDTO{}, ErrConflict
		}
		return UserDTO{}, err
	}

	return toUserDTO(user), nil
}

func (u *UserUsecase) Delete(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewValidationError(FieldErrors{"id": "invalid id"})
	}

	err := u.users.Delete(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Resource: "user"}
	}
	return err
}

// 本人のプロフィール更新（住所・電話は必須、名前は任意）
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (UserDTO, error) {
	if userID <= 0 {
		return UserDTO{}, ErrUnauthorized
	}

	fields := FieldErrors{}
	if strings.TrimSpace(in.Address) == "" {
		fields["address"] = "address is required"
	}
	if strings.TrimSpace(in.Phone) == "" {
		fields["phone"] = "phone is required"
	}
	if len(fields) > 0 {
		return UserDTO{}, NewValidationError(fields)
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return UserDTO{}, err
	}
	if user == nil {
		return UserDTO{}, ErrUnauthorized
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		user.Name = *in.Name
	}
	user.Address = in.Address
	user.Phone = in.Phone

	if err := u.users.Update(ctx, user); err != nil {
		return UserDTO{}, err
	}

	return toUserDTO(user), nil
}
