package usershandler

import (
	"context"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	filestorage "talent-park-backend/lib/file-storage"
	usersstore "talent-park-backend/lib/users/store"
	authutils "talent-park-backend/lib/utils/auth-utils"
	"talent-park-backend/models"
	userapimodels "talent-park-backend/models/api/users"
	dbmodels "talent-park-backend/models/db"
)

type Provider interface {
	Register(ctx context.Context, data userapimodels.RegisterRequest, resume *filestorage.ResumeUpload) (userapimodels.AuthResponse, error)
	Login(email, password string, role models.UserRole) (userapimodels.AuthResponse, error)
	GetByID(userID string) (userapimodels.UserView, error)
	UpdateProfile(ctx context.Context, userID string, data userapimodels.ProfileData, resume *filestorage.ResumeUpload) (userapimodels.UserView, error)
	UpdatePassword(userID string, data userapimodels.UpdatePasswordRequest) (token string, err error)
}

var Instance Provider

func NewHandler(conn *gorm.DB, fileStorage filestorage.Provider) {
	Instance = impl{
		store:       usersstore.NewInstance(conn),
		fileStorage: fileStorage,
	}
}

type impl struct {
	store       usersstore.Provider
	fileStorage filestorage.Provider
}

func (i impl) Register(ctx context.Context, data userapimodels.RegisterRequest, resume *filestorage.ResumeUpload) (userapimodels.AuthResponse, error) {
	exist, err := i.store.ExistByEmail(data.Email)
	if err != nil {
		return userapimodels.AuthResponse{}, errors.Wrap(err, "failed to check email")
	}
	if exist {
		return userapimodels.AuthResponse{}, errors.Wrap(models.ErrValidation, "email is already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return userapimodels.AuthResponse{}, errors.Wrap(err, "failed to hash password")
	}
	rec := dbmodels.User{
		Name:        data.Name,
		Email:       data.Email,
		Phone:       data.Phone,
		Address:     data.Address,
		Password:    string(hash),
		Role:        data.Role,
		Niches:      pq.StringArray(data.Niches()),
		CoverLetter: data.CoverLetter,
	}
	if resume != nil {
		rec.Resume, err = i.fileStorage.UploadResume(ctx, data.Email, resume.FileName, resume.Reader, resume.Size)
		if err != nil {
			return userapimodels.AuthResponse{}, err
		}
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return userapimodels.AuthResponse{}, errors.Wrap(err, "failed to create user")
	}
	rec.ID = id
	return i.authResponse(rec)
}

func (i impl) Login(email, password string, role models.UserRole) (userapimodels.AuthResponse, error) {
	rec, err := i.store.FindByEmail(email)
	if err != nil {
		return userapimodels.AuthResponse{}, errors.Wrap(err, "failed to find user")
	}
	if rec == nil || rec.Role != role {
		return userapimodels.AuthResponse{}, models.ErrUnauthenticated
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.Password), []byte(password)) != nil {
		return userapimodels.AuthResponse{}, models.ErrUnauthenticated
	}
	return i.authResponse(*rec)
}

func (i impl) GetByID(userID string) (userapimodels.UserView, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return userapimodels.UserView{}, errors.Wrap(err, "failed to get user")
	}
	if rec == nil {
		return userapimodels.UserView{}, models.ErrNotFound
	}
	return userapimodels.ToUserView(*rec), nil
}

func (i impl) UpdateProfile(ctx context.Context, userID string, data userapimodels.ProfileData, resume *filestorage.ResumeUpload) (userapimodels.UserView, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return userapimodels.UserView{}, errors.Wrap(err, "failed to get user")
	}
	if rec == nil {
		return userapimodels.UserView{}, models.ErrNotFound
	}
	if err = data.ValidateForRole(rec.Role); err != nil {
		return userapimodels.UserView{}, errors.Wrap(models.ErrValidation, err.Error())
	}
	if data.Email != rec.Email {
		exist, err := i.store.ExistByEmail(data.Email)
		if err != nil {
			return userapimodels.UserView{}, errors.Wrap(err, "failed to check email")
		}
		if exist {
			return userapimodels.UserView{}, errors.Wrap(models.ErrValidation, "email is already registered")
		}
	}
	updMap := map[string]interface{}{
		"name":         data.Name,
		"email":        data.Email,
		"phone":        data.Phone,
		"address":      data.Address,
		"cover_letter": data.CoverLetter,
		"niches":       pq.StringArray(data.Niches()),
	}
	if resume != nil {
		newResume, err := i.fileStorage.UploadResume(ctx, userID, resume.FileName, resume.Reader, resume.Size)
		if err != nil {
			return userapimodels.UserView{}, err
		}
		// the old object is gone either way; a failed delete only leaks storage
		if rec.Resume.StorageID != "" {
			if delErr := i.fileStorage.DeleteResume(ctx, rec.Resume.StorageID); delErr != nil {
				log.WithError(delErr).
					WithField("user_id", userID).
					Warn("failed to remove replaced resume")
			}
		}
		updMap["resume_storage_id"] = newResume.StorageID
		updMap["resume_url"] = newResume.URL
	}
	if err = i.store.Update(userID, updMap); err != nil {
		return userapimodels.UserView{}, errors.Wrap(err, "failed to update profile")
	}
	updated, err := i.store.GetByID(userID)
	if err != nil || updated == nil {
		return userapimodels.UserView{}, errors.Wrap(err, "failed to reload user")
	}
	return userapimodels.ToUserView(*updated), nil
}

func (i impl) UpdatePassword(userID string, data userapimodels.UpdatePasswordRequest) (token string, err error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to get user")
	}
	if rec == nil {
		return "", models.ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.Password), []byte(data.OldPassword)) != nil {
		return "", errors.Wrap(models.ErrValidation, "old password is incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	err = i.store.Update(userID, map[string]interface{}{"password": string(hash)})
	if err != nil {
		return "", errors.Wrap(err, "failed to update password")
	}
	return authutils.GetToken(rec.ID, rec.Name, rec.Role)
}

func (i impl) authResponse(rec dbmodels.User) (userapimodels.AuthResponse, error) {
	token, err := authutils.GetToken(rec.ID, rec.Name, rec.Role)
	if err != nil {
		return userapimodels.AuthResponse{}, errors.Wrap(err, "failed to issue token")
	}
	return userapimodels.AuthResponse{
		Token: token,
		User:  userapimodels.ToUserView(rec),
	}, nil
}
