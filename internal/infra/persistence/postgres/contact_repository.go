package postgres

import (
	"context"

	"contacthub/internal/domain/entity"
	domainerrors "contacthub/internal/domain/errors"
	"contacthub/internal/domain/repository"
	"contacthub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the domain.ContactRepository interface using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// FindByID retrieves a single contact by its unique ID.
func (repo *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by id")
	}

	return toContactDomain(&contactM), nil
}

// ListByUser retrieves a page of a user's contacts, newest first.
func (repo *contactRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Contact, error) {
	var contactMs []model.ContactModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&contactMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return toContactDomainSlice(contactMs), nil
}

// ListAllByUser retrieves every contact belonging to a user.
func (repo *contactRepository) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error) {
	var contactMs []model.ContactModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&contactMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all contacts")
	}

	return toContactDomainSlice(contactMs), nil
}

// Search retrieves a user's contacts matching the first non-empty filter.
func (repo *contactRepository) Search(ctx context.Context, userID uuid.UUID, filter repository.ContactSearch) ([]*entity.Contact, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)

	switch {
	case filter.FirstName != "":
		query = query.Where("first_name ILIKE ?", filter.FirstName+"%")
	case filter.LastName != "":
		query = query.Where("last_name ILIKE ?", filter.LastName+"%")
	case filter.Email != "":
		query = query.Where("email ILIKE ?", filter.Email+"%")
	}

	var contactMs []model.ContactModel
	if err := query.Order("created_at DESC").Find(&contactMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search contacts")
	}

	return toContactDomainSlice(contactMs), nil
}

// Create persists a new contact entity to the database.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "contact owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// Update modifies an existing contact entity in the database.
func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ?", contact.ID).
		Updates(map[string]any{
			"first_name": contactM.FirstName,
			"last_name":  contactM.LastName,
			"email":      contactM.Email,
			"phone":      contactM.Phone,
			"birthday":   contactM.Birthday,
			"notes":      contactM.Notes,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// Delete removes a contact by its ID.
func (repo *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContactModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		UserID:    data.UserID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		Birthday:  data.Birthday,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toContactDomainSlice(data []model.ContactModel) []*entity.Contact {
	contacts := make([]*entity.Contact, 0, len(data))
	for i := range data {
		contacts = append(contacts, toContactDomain(&data[i]))
	}

	return contacts
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		Birthday:  data.Birthday,
		Notes:     data.Notes,
	}
}
