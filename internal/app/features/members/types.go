// internal/app/features/members/types.go
package members

import (
	"github.com/hbcybertech/clubhub/internal/app/system/convert"
	"github.com/hbcybertech/clubhub/internal/app/system/htmlsanitize"
	"github.com/hbcybertech/clubhub/internal/app/system/inputval"
	"github.com/hbcybertech/clubhub/internal/domain/models"
)

// generalRequest is the wire form of a general membership application.
type generalRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Grade       int    `json:"grade"`
	Skills      int    `json:"skills"`
	Extra       string `json:"extra"`
	DateCreated string `json:"date_created"`
}

func (req generalRequest) validate(systemEmail string) error {
	var v inputval.Violations
	v.Check(inputval.FullName(req.FullName))
	v.Check(inputval.Email(req.Email, systemEmail))
	v.Check(inputval.Grade(req.Grade))
	v.Check(inputval.Skills(req.Skills))
	v.Check(inputval.FreeText("extra", req.Extra, 0, 350))
	return v.Err()
}

func (req generalRequest) toEntity() (models.GeneralMember, error) {
	created, err := convert.ParseDate(req.DateCreated)
	if err != nil {
		return models.GeneralMember{}, err
	}
	return models.GeneralMember{
		FullName:    req.FullName,
		Email:       req.Email,
		Grade:       req.Grade,
		Skills:      req.Skills,
		Extra:       htmlsanitize.Sanitize(req.Extra),
		DateCreated: created,
	}, nil
}

// executiveRequest is the wire form of an executive application.
type executiveRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Grade       int    `json:"grade"`
	ExecType    string `json:"exec_type"`
	Why         string `json:"why"`
	Experience  string `json:"experience"`
	Portfolio   string `json:"portfolio"`
	Extra       string `json:"extra"`
	DateCreated string `json:"date_created"`
}

func (req executiveRequest) validate(systemEmail string) error {
	var v inputval.Violations
	v.Check(inputval.FullName(req.FullName))
	v.Check(inputval.Email(req.Email, systemEmail))
	v.Check(inputval.Grade(req.Grade))
	v.Check(inputval.ExecType(req.ExecType))
	v.Check(inputval.FreeText("why", req.Why, 1, 600))
	v.Check(inputval.FreeText("experience", req.Experience, 1, 600))
	v.Check(inputval.PortfolioURL(req.Portfolio))
	v.Check(inputval.FreeText("extra", req.Extra, 0, 200))
	return v.Err()
}

func (req executiveRequest) toEntity() (models.ExecutiveMember, error) {
	created, err := convert.ParseDate(req.DateCreated)
	if err != nil {
		return models.ExecutiveMember{}, err
	}
	return models.ExecutiveMember{
		FullName:    req.FullName,
		Email:       req.Email,
		Grade:       req.Grade,
		ExecType:    req.ExecType,
		Why:         htmlsanitize.Sanitize(req.Why),
		Experience:  htmlsanitize.Sanitize(req.Experience),
		Portfolio:   req.Portfolio,
		Extra:       htmlsanitize.Sanitize(req.Extra),
		DateCreated: created,
	}, nil
}
