package services

import (
	"time"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/utils"
	"github.com/stretchr/testify/require"
)

func (s *ServiceTestSuite) newAuth() (*AuthService, *utils.TokenMaker) {
	tokens, err := utils.NewTokenMaker("test-secret", "vastra-api", "vastra-clients", time.Hour)
	require.NoError(s.T(), err)
	return NewAuthService(s.store, tokens), tokens
}

func (s *ServiceTestSuite) TestRegisterThenLogin() {
	auth, tokens := s.newAuth()

	registered, err := auth.Register(s.ctx, dto.RegisterRequest{
		Email: "New@Test.io", Password: "Secret1!", FirstName: "Ada", LastName: "L",
	})
	require.NoError(s.T(), err)
	require.True(s.T(), registered.IsSuccess)
	require.Equal(s.T(), "new@test.io", registered.Email)

	claims, err := tokens.Verify(registered.Token)
	require.NoError(s.T(), err)
	userID, err := claims.UserID()
	require.NoError(s.T(), err)
	require.Equal(s.T(), registered.UserID, userID)

	loggedIn, err := auth.Login(s.ctx, dto.LoginRequest{Email: "new@test.io", Password: "Secret1!"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), registered.UserID, loggedIn.UserID)
	require.NotEmpty(s.T(), loggedIn.Token)
}

func (s *ServiceTestSuite) TestRegisterDuplicateEmail() {
	auth, _ := s.newAuth()

	_, err := auth.Register(s.ctx, dto.RegisterRequest{Email: s.user.Email, Password: "Secret1!", FirstName: "A", LastName: "B"})
	require.ErrorIs(s.T(), err, ErrEmailTaken)
}

func (s *ServiceTestSuite) TestRegisterWeakPassword() {
	auth, _ := s.newAuth()

	_, err := auth.Register(s.ctx, dto.RegisterRequest{Email: "weak@test.io", Password: "abc", FirstName: "A", LastName: "B"})
	var policyErr *PasswordPolicyError
	require.ErrorAs(s.T(), err, &policyErr)
	require.Len(s.T(), policyErr.Problems, 4)
	require.Contains(s.T(), policyErr.Error(), ", ")
}

func (s *ServiceTestSuite) TestLoginFailuresAreUniform() {
	auth, _ := s.newAuth()
	_, err := auth.Register(s.ctx, dto.RegisterRequest{Email: "known@test.io", Password: "Secret1!", FirstName: "A", LastName: "B"})
	require.NoError(s.T(), err)

	_, err = auth.Login(s.ctx, dto.LoginRequest{Email: "known@test.io", Password: "wrong"})
	require.ErrorIs(s.T(), err, ErrUnauthorized)

	_, err = auth.Login(s.ctx, dto.LoginRequest{Email: "nobody@test.io", Password: "Secret1!"})
	require.ErrorIs(s.T(), err, ErrUnauthorized)
}
