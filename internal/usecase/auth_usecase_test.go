package usecase

import (
	"context"
	"errors"
	"testing"

	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase/interfaces"
	mock_interfaces "societyhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Register(context.Background(), "  ", "9876543210", "secret", "")
		if !errors.Is(err, ErrMissingSignupField) {
			t.Fatalf("expected ErrMissingSignupField, got %v", err)
		}
	})

	t.Run("invalid mobile", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		for _, mobile := range []string{"12345", "98765432101", "98765abc10"} {
			_, err := uc.Register(context.Background(), "Asha", mobile, "secret", "")
			if !errors.Is(err, ErrInvalidMobile) {
				t.Fatalf("mobile %q: expected ErrInvalidMobile, got %v", mobile, err)
			}
		}
	})

	t.Run("provider account exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewAuthUseCase(nil, identity)
		identity.EXPECT().CreateAccount(gomock.Any(), "Asha", "9876543210", "secret").Return("", interfaces.ErrAccountExists)

		_, err := uc.Register(context.Background(), "Asha", "9876543210", "secret", "")
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("profile row conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewAuthUseCase(users, identity)
		identity.EXPECT().CreateAccount(gomock.Any(), "Asha", "9876543210", "secret").Return("u-1", nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, interfaces.ErrConditionalCheckFailed)

		_, err := uc.Register(context.Background(), "Asha", "9876543210", "secret", "")
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("success defaults user type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewAuthUseCase(users, identity)
		identity.EXPECT().CreateAccount(gomock.Any(), "Asha", "9876543210", "secret").Return("u-1", nil)
		users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID != "u-1" || u.UserType != "resident" {
					t.Fatalf("unexpected user: %+v", u)
				}
				if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return u, nil
			},
		)

		created, err := uc.Register(context.Background(), " Asha ", " 9876543210 ", " secret ", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Mobile != "9876543210" {
			t.Fatalf("unexpected result: %+v", created)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("empty credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Login(context.Background(), "9876543210", "  ")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("bad password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewAuthUseCase(nil, identity)
		identity.EXPECT().Authenticate(gomock.Any(), "9876543210", "wrong").Return(interfaces.IdentitySession{}, interfaces.ErrBadCredentials)

		_, err := uc.Login(context.Background(), "9876543210", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewAuthUseCase(nil, identity)
		identity.EXPECT().Authenticate(gomock.Any(), "9876543210", "secret").Return(interfaces.IdentitySession{}, interfaces.ErrAccountNotFound)

		_, err := uc.Login(context.Background(), "9876543210", "secret")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("success with profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewAuthUseCase(users, identity)
		identity.EXPECT().Authenticate(gomock.Any(), "9876543210", "secret").Return(interfaces.IdentitySession{
			UserID: "u-1", DisplayName: "Asha", AccessToken: "at", IDToken: "it",
		}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Name: "Asha", Mobile: "9876543210"}, nil)

		res, err := uc.Login(context.Background(), "9876543210", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.User.ID != "u-1" || res.AccessToken != "at" || res.IDToken != "it" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("missing profile falls back to provider data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewAuthUseCase(users, identity)
		identity.EXPECT().Authenticate(gomock.Any(), "9876543210", "secret").Return(interfaces.IdentitySession{
			UserID: "u-1", DisplayName: "Asha", AccessToken: "at",
		}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{}, nil)

		res, err := uc.Login(context.Background(), "9876543210", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.User.ID != "u-1" || res.User.Name != "Asha" || res.User.Mobile != "9876543210" {
			t.Fatalf("unexpected fallback user: %+v", res.User)
		}
	})
}

func TestAuthUseCase_GetUser(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.GetUser(context.Background(), "  ")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{}, nil)

		_, err := uc.GetUser(context.Background(), "u-1")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Name: "Asha"}, nil)

		u, err := uc.GetUser(context.Background(), " u-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != "u-1" {
			t.Fatalf("unexpected result: %+v", u)
		}
	})
}
