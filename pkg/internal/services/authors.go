package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sahifa-news/sahifa/pkg/internal/database"
	"github.com/sahifa-news/sahifa/pkg/internal/models"
)

func GetAuthorWithID(id uint) (models.Author, error) {
	var author models.Author
	if err := database.C.Where("id = ?", id).First(&author).Error; err != nil {
		return author, fmt.Errorf("unable to get author by id: %v", err)
	}
	return author, nil
}

func GetAuthorWithName(name string) (models.Author, error) {
	var author models.Author
	if err := database.C.Where("name = ?", name).First(&author).Error; err != nil {
		return author, fmt.Errorf("unable to get author by name: %v", err)
	}
	return author, nil
}

// EnsureAuthor mirrors an identity-provider account into the local authors
// table, refreshing the display fields when they drift.
func EnsureAuthor(accountId uint, name, nick, avatar string) (models.Author, error) {
	var author models.Author
	err := database.C.Where("account_id = ?", accountId).First(&author).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return author, err
		}
		author = models.Author{
			Name:      name,
			Nick:      nick,
			Avatar:    avatar,
			AccountID: accountId,
		}
		if err := database.C.Create(&author).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				err = database.C.Where("account_id = ?", accountId).First(&author).Error
			}
			return author, err
		}
		return author, nil
	}

	if author.Name != name || author.Nick != nick || author.Avatar != avatar {
		author.Name = name
		author.Nick = nick
		author.Avatar = avatar
		if err := database.C.Save(&author).Error; err != nil {
			return author, err
		}
	}

	return author, nil
}

// DeleteAuthorAccount handles an account-deleted signal from the identity
// provider: the author's articles go away with their reactions and bookmarks,
// and so does every interaction the account left on other articles.
func DeleteAuthorAccount(accountId uint) error {
	var author models.Author
	if err := database.C.Where("account_id = ?", accountId).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	var articles []models.Article
	if err := database.C.Where("author_id = ?", author.ID).Find(&articles).Error; err != nil {
		return err
	}
	for _, article := range articles {
		if err := DeleteArticle(article); err != nil {
			return err
		}
	}

	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", author.AccountID).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", author.AccountID).Delete(&models.SavedArticle{}).Error; err != nil {
			return err
		}
		return tx.Delete(&author).Error
	})
}
