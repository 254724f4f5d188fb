package services

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"vitrine/models"
	"vitrine/store"
)

const usersCollection = "users"

type userDocument struct {
	Users []models.User `json:"users"`
}

// UserService manages the user collection: registration, credential checks
// and first-boot admin seeding.
type UserService struct {
	store store.Store

	// Serializes the load-modify-save cycle within this process. Nothing
	// protects against a second process writing the same file.
	mu sync.Mutex
}

func NewUserService(s store.Store) *UserService {
	return &UserService{store: s}
}

func (s *UserService) load() (*userDocument, error) {
	doc := &userDocument{Users: []models.User{}}
	if err := s.store.Load(usersCollection, doc); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return doc, nil
}

// Register hashes the password and appends a non-admin user. The email must
// not already exist; the match is exact and case-sensitive.
func (s *UserService) Register(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, u := range doc.Users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      false,
	}
	doc.Users = append(doc.Users, user)

	if err := s.store.Save(usersCollection, doc); err != nil {
		return nil, fmt.Errorf("failed to save users: %w", err)
	}

	return &user, nil
}

// Authenticate looks the email up and verifies the password. Unknown email
// and wrong password fail with the same error.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Users {
		if doc.Users[i].Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(doc.Users[i].PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		user := doc.Users[i]
		return &user, nil
	}

	return nil, ErrInvalidCredentials
}

// SeedAdmin creates the default admin account on first boot. It runs only
// when the users collection does not exist yet, so it never duplicates the
// admin or touches registered users. The default credentials are a
// documented weak default meant to be changed after first login.
func (s *UserService) SeedAdmin(email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store.Exists(usersCollection) {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	doc := &userDocument{
		Users: []models.User{{
			Email:        email,
			PasswordHash: string(hash),
			IsAdmin:      true,
		}},
	}

	if err := s.store.Save(usersCollection, doc); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}
