package adcopy

import "fmt"

// Request is one of GoogleRequest, MetaRequest, LinkedInRequest or
// YouTubeRequest. Each carries only the fields its platform uses.
type Request interface {
	Platform() Platform
	isRequest()
}

// GoogleRequest describes a Google search ad.
type GoogleRequest struct {
	BusinessName string           `json:"business_name" validate:"required,max=60"`
	Category     BusinessCategory `json:"category"`
	Product      string           `json:"product" validate:"required,max=80"`
	LandingURL   string           `json:"landing_url" validate:"required,url"`
	Keywords     []string         `json:"keywords,omitempty" validate:"max=15,dive,required,max=40"`
}

// MetaRequest describes a Facebook/Instagram ad.
type MetaRequest struct {
	BusinessName   string           `json:"business_name" validate:"required,max=60"`
	Category       BusinessCategory `json:"category"`
	Product        string           `json:"product" validate:"required,max=80"`
	TargetAudience string           `json:"target_audience" validate:"required,max=120"`
	Objective      string           `json:"objective" validate:"required,oneof=awareness traffic conversions"`
	Offer          string           `json:"offer,omitempty" validate:"max=100"`
}

// LinkedInRequest describes a LinkedIn sponsored content ad.
type LinkedInRequest struct {
	CompanyName string           `json:"company_name" validate:"required,max=60"`
	Category    BusinessCategory `json:"category"`
	Product     string           `json:"product" validate:"required,max=80"`
	TargetRole  string           `json:"target_role" validate:"required,max=80"`
	Industry    string           `json:"industry,omitempty" validate:"max=60"`
	Objective   string           `json:"objective" validate:"required,oneof=leads awareness hiring"`
}

// YouTubeRequest describes a YouTube video ad.
type YouTubeRequest struct {
	ChannelName    string           `json:"channel_name" validate:"required,max=60"`
	Category       BusinessCategory `json:"category"`
	Product        string           `json:"product" validate:"required,max=80"`
	TargetAudience string           `json:"target_audience" validate:"required,max=120"`
	VideoSeconds   int              `json:"video_seconds" validate:"required,min=6,max=180"`
}

func (GoogleRequest) Platform() Platform   { return PlatformGoogle }
func (MetaRequest) Platform() Platform     { return PlatformMeta }
func (LinkedInRequest) Platform() Platform { return PlatformLinkedIn }
func (YouTubeRequest) Platform() Platform  { return PlatformYouTube }

func (GoogleRequest) isRequest()   {}
func (MetaRequest) isRequest()     {}
func (LinkedInRequest) isRequest() {}
func (YouTubeRequest) isRequest()  {}

// NewRequest returns an empty request for p, ready to be decoded into.
func NewRequest(p Platform) (Request, error) {
	switch p {
	case PlatformGoogle:
		return &GoogleRequest{}, nil
	case PlatformMeta:
		return &MetaRequest{}, nil
	case PlatformLinkedIn:
		return &LinkedInRequest{}, nil
	case PlatformYouTube:
		return &YouTubeRequest{}, nil
	}
	return nil, fmt.Errorf("unknown ad platform %v", p)
}
