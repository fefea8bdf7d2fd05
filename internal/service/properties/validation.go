package properties

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

func validateProperty(p *domain.Property) error {
	p.Title = strings.TrimSpace(p.Title)
	p.Location = strings.TrimSpace(p.Location)

	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(p.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}
	if p.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(p.Location) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location is too long", ErrInvalidInput)
	}
	if !p.PricePerNight.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if p.Bedrooms < 0 || p.Bathrooms < 0 {
		return fmt.Errorf("%w: bedrooms and bathrooms must not be negative", ErrInvalidInput)
	}
	if p.Area.IsNegative() {
		return fmt.Errorf("%w: area must not be negative", ErrInvalidInput)
	}
	if len(p.Gallery) > domain.MaxGalleryImages {
		return fmt.Errorf("%w: gallery holds at most %d images", ErrInvalidInput, domain.MaxGalleryImages)
	}
	for _, img := range p.Gallery {
		if strings.TrimSpace(img) == "" {
			return fmt.Errorf("%w: gallery image must not be empty", ErrInvalidInput)
		}
	}
	return nil
}
