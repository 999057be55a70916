package services

import (
	"strings"
	"testing"

	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories"
	"eyesonplants/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type PasswordServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	userRepo *repository_mocks.MockUserRepositoryInterface
	service  PasswordServiceInterface
}

func (s *PasswordServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.service = NewPasswordService(s.userRepo)
}

func (s *PasswordServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestValidatePassword_Valid() {
	s.NoError(s.service.ValidatePassword("longenough"))
}

func (s *PasswordServiceTestSuite) TestValidatePassword_Empty() {
	s.ErrorIs(s.service.ValidatePassword(""), ErrPasswordEmpty)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooShort() {
	s.ErrorIs(s.service.ValidatePassword("short"), ErrPasswordTooShort)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooLong() {
	s.ErrorIs(s.service.ValidatePassword(strings.Repeat("a", 73)), ErrPasswordTooLong)
}

func (s *PasswordServiceTestSuite) TestHashPassword_Success() {
	hash, err := s.service.HashPassword("SecurePass123!")
	s.NoError(err)
	s.NotEmpty(hash)
	s.NotEqual("SecurePass123!", hash)

	s.NoError(bcrypt.CompareHashAndPassword([]byte(hash), []byte("SecurePass123!")))
}

func (s *PasswordServiceTestSuite) TestHashPassword_RejectsInvalid() {
	hash, err := s.service.HashPassword("nope")
	s.Error(err)
	s.Empty(hash)
}

func (s *PasswordServiceTestSuite) TestComparePassword() {
	hash, err := s.service.HashPassword("SecurePass123!")
	s.Require().NoError(err)

	s.True(s.service.ComparePassword("SecurePass123!", hash))
	s.False(s.service.ComparePassword("WrongPass123!", hash))
	s.False(s.service.ComparePassword("SecurePass123!", "not-a-hash"))
}

func (s *PasswordServiceTestSuite) TestGenerateSecurePassword() {
	password, err := s.service.GenerateSecurePassword()
	s.NoError(err)
	s.Len(password, 16)

	// Every character class must be present
	s.True(uppercaseRegex.MatchString(password))
	s.True(lowercaseRegex.MatchString(password))
	s.True(numberRegex.MatchString(password))
	s.True(specialRegex.MatchString(password))

	other, err := s.service.GenerateSecurePassword()
	s.NoError(err)
	s.NotEqual(password, other)
}

func (s *PasswordServiceTestSuite) TestPasswordStrength() {
	s.Equal(0, s.service.PasswordStrength(""))
	s.Less(s.service.PasswordStrength("abcdefgh"), s.service.PasswordStrength("Abcdefgh1!"))
	s.LessOrEqual(s.service.PasswordStrength("Xk9$mQp2&Lw7!zRv4Bd@"), 100)
	s.GreaterOrEqual(s.service.PasswordStrength("Xk9$mQp2&Lw7!zRv4Bd@"), 80)
}

func (s *PasswordServiceTestSuite) TestChangePassword_Success() {
	current := "OldSecret123!"
	currentHash, err := bcrypt.GenerateFromPassword([]byte(current), bcrypt.MinCost)
	s.Require().NoError(err)

	user := &models.User{ID: 101, PasswordHash: string(currentHash)}

	s.userRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)
	s.userRepo.EXPECT().UpdatePasswordHash(user.ID, gomock.Any()).Return(nil).Times(1)

	s.NoError(s.service.ChangePassword(user.ID, current, "NewSecret456!"))
}

func (s *PasswordServiceTestSuite) TestChangePassword_WrongCurrentPassword() {
	currentHash, err := bcrypt.GenerateFromPassword([]byte("OldSecret123!"), bcrypt.MinCost)
	s.Require().NoError(err)

	user := &models.User{ID: 101, PasswordHash: string(currentHash)}

	s.userRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)

	err = s.service.ChangePassword(user.ID, "NotTheRightOne!", "NewSecret456!")
	s.ErrorIs(err, ErrCurrentPasswordWrong)
}

func (s *PasswordServiceTestSuite) TestChangePassword_SamePassword() {
	err := s.service.ChangePassword(101, "Repeated123!", "Repeated123!")
	s.ErrorIs(err, ErrSamePassword)
}

func (s *PasswordServiceTestSuite) TestChangePassword_WeakNewPassword() {
	err := s.service.ChangePassword(101, "OldSecret123!", "tiny")
	s.ErrorIs(err, ErrPasswordTooShort)
}

func (s *PasswordServiceTestSuite) TestChangePassword_UserNotFound() {
	s.userRepo.EXPECT().GetByID(int64(404)).Return(nil, repositories.ErrUserNotFound).Times(1)

	err := s.service.ChangePassword(404, "OldSecret123!", "NewSecret456!")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *PasswordServiceTestSuite) TestChangePassword_InvalidUserID() {
	err := s.service.ChangePassword(0, "OldSecret123!", "NewSecret456!")
	s.ErrorIs(err, ErrInvalidUserID)
}
