package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"imobia/internal/dto"
	"imobia/internal/masks"
	"imobia/internal/repository"

	"github.com/sirupsen/logrus"
)

// ContactService forwards public contact-form submissions to the company
// email. The whole path is best-effort: a missing sender, missing company
// email or delivery failure is logged and never surfaced to the visitor.
type ContactService struct {
	settings repository.CompanySettingsRepository
	listings repository.RealEstateRepository
	sender   ContactEmailSender
	logger   *logrus.Logger
}

func NewContactService(
	settings repository.CompanySettingsRepository,
	listings repository.RealEstateRepository,
	sender ContactEmailSender,
	logger *logrus.Logger,
) *ContactService {
	return &ContactService{
		settings: settings,
		listings: listings,
		sender:   sender,
		logger:   logger,
	}
}

func (s *ContactService) Send(ctx context.Context, input dto.ContactRequest) {
	if s.sender == nil {
		s.log().Warn("contact message dropped: email sender not configured")
		return
	}

	settings, err := s.settings.Get(ctx)
	if err != nil || settings == nil || settings.Email == nil || *settings.Email == "" {
		s.log().WithError(err).Warn("contact message dropped: company email unavailable")
		return
	}

	subject := "Novo contato pelo site"
	var property string
	if input.PropertyID != nil {
		if listing, err := s.listings.FindByID(ctx, *input.PropertyID); err == nil && listing != nil {
			subject = fmt.Sprintf("Novo contato pelo site - %s", listing.Code)
			value := ""
			if listing.SaleValue != nil {
				value = masks.FormatCurrency(*listing.SaleValue)
			}
			property = fmt.Sprintf("Imóvel: %s (%s) %s", listing.Title, listing.Code, value)
		}
	}

	text := strings.TrimSpace(fmt.Sprintf(
		"Nome: %s\nTelefone: %s\nEmail: %s\n%s\n\n%s",
		input.Name, masks.MaskPhone(input.Phone), input.Email, property, input.Message,
	))
	htmlBody := "<p>" + strings.ReplaceAll(html.EscapeString(text), "\n", "<br>") + "</p>"

	if err := s.sender.Send(ctx, *settings.Email, subject, htmlBody, text); err != nil {
		s.log().WithError(err).Warn("contact email delivery failed")
	}
}

func (s *ContactService) log() *logrus.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logrus.StandardLogger()
}
