package usecase

import (
	"github.com/jhoicas/agencyhub-api/internal/application/dto"
	"github.com/jhoicas/agencyhub-api/internal/domain/entity"
)

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		AgencyID:  u.AgencyID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func entityToAgencyResponse(a *entity.Agency) *dto.AgencyResponse {
	if a == nil {
		return nil
	}
	return &dto.AgencyResponse{
		ID:           a.ID,
		Name:         a.Name,
		CompanyEmail: a.CompanyEmail,
		CompanyPhone: a.CompanyPhone,
		Address:      a.Address,
		City:         a.City,
		ZipCode:      a.ZipCode,
		State:        a.State,
		Country:      a.Country,
		AgencyLogo:   a.AgencyLogo,
		WhiteLabel:   a.WhiteLabel,
		Goal:         a.Goal,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func entityToSubAccountResponse(s *entity.SubAccount) *dto.SubAccountResponse {
	if s == nil {
		return nil
	}
	return &dto.SubAccountResponse{
		ID:             s.ID,
		AgencyID:       s.AgencyID,
		Name:           s.Name,
		SubAccountLogo: s.SubAccountLogo,
		CompanyEmail:   s.CompanyEmail,
		CompanyPhone:   s.CompanyPhone,
		Address:        s.Address,
		City:           s.City,
		ZipCode:        s.ZipCode,
		State:          s.State,
		Country:        s.Country,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func entityToSidebarOptions(opts []*entity.SidebarOption) []dto.SidebarOptionResponse {
	out := make([]dto.SidebarOptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, dto.SidebarOptionResponse{
			ID:   o.ID,
			Name: o.Name,
			Link: o.Link,
			Icon: o.Icon,
		})
	}
	return out
}

func entityToNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:           n.ID,
		Text:         n.Text,
		UserID:       n.UserID,
		AgencyID:     n.AgencyID,
		SubAccountID: n.SubAccountID,
		CreatedAt:    n.CreatedAt,
	}
}
