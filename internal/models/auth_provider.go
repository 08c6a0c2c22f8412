package models

import (
	"time"

	"github.com/BruksfildServices01/barberian-api/internal/domain/identity"
)

type AuthProvider struct {
	ID               uint                  `gorm:"column:id_auth_provider;primaryKey;autoIncrement"`
	Provider         identity.ProviderKind `gorm:"size:20;not null;check:chk_auth_providers_provider,provider IN ('local','google')"`
	ProviderIDGoogle *string               `gorm:"column:provider_id_google;size:255"`
	Token            *string               `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a AuthProvider) Key() uint { return a.ID }
