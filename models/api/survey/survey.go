package surveyapimodels

import (
	"strings"
	"time"

	"impar-backend/models"
	dbmodels "impar-backend/models/db"

	"github.com/pkg/errors"
)

type OptionData struct {
	Text string `json:"text"`
}

type QuestionData struct {
	Type        models.QuestionType `json:"type"`
	Text        string              `json:"text"`
	Required    bool                `json:"required"`
	Highlighted bool                `json:"highlighted"`
	Options     []OptionData        `json:"options,omitempty"`
	MinRating   *int                `json:"min_rating,omitempty"`
	MaxRating   *int                `json:"max_rating,omitempty"`
}

type SurveyCreateRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Questions   []QuestionData `json:"questions"`
	IsFeatured  bool           `json:"is_featured"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
}

func (r SurveyCreateRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("не указано название опроса")
	}
	return nil
}

type SurveyUpdateRequest struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Questions   *[]QuestionData `json:"questions,omitempty"`
	IsPublished *bool           `json:"is_published,omitempty"`
	IsFeatured  *bool           `json:"is_featured,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
}

func (r SurveyUpdateRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return errors.New("название опроса не должно быть пустым")
	}
	return nil
}

type SurveyFilter struct {
	Featured  *bool  `query:"featured"`
	Published *bool  `query:"published"`
	OwnerID   string `query:"owner_id"`
}

type SurveyView struct {
	ID               string              `json:"id"`
	SurveyNumber     int                 `json:"survey_number"`
	Title            string              `json:"title"`
	Description      string              `json:"description,omitempty"`
	OwnerID          string              `json:"owner_id"`
	OwnerName        string              `json:"owner_name,omitempty"`
	Questions        []dbmodels.Question `json:"questions"`
	IsPublished      bool                `json:"is_published"`
	IsFeatured       bool                `json:"is_featured"`
	EndDate          *time.Time          `json:"end_date,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	ResponseCount    int64               `json:"response_count"`
	UserHasResponded bool                `json:"user_has_responded"`
	IsOpen           bool                `json:"is_open"` // производное состояние, не хранится
}

func SurveyConvert(rec dbmodels.Survey, ownerName string, responseCount int64, hasResponded bool) SurveyView {
	questions := rec.Questions
	if questions == nil {
		questions = []dbmodels.Question{}
	}
	return SurveyView{
		ID:               rec.ID,
		SurveyNumber:     rec.SurveyNumber,
		Title:            rec.Title,
		Description:      rec.Description,
		OwnerID:          rec.OwnerID,
		OwnerName:        ownerName,
		Questions:        questions,
		IsPublished:      rec.IsPublished,
		IsFeatured:       rec.IsFeatured,
		EndDate:          rec.EndDate,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
		ResponseCount:    responseCount,
		UserHasResponded: hasResponded,
		IsOpen:           rec.IsOpenForResponses(time.Now()),
	}
}

type SuggestQuestionsRequest struct {
	Topic string `json:"topic"`
}

func (r SuggestQuestionsRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return errors.New("не указана тема опроса")
	}
	return nil
}

type SuggestQuestionsResponse struct {
	Questions []QuestionData `json:"questions"`
}
