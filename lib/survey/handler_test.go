package survey

import (
	"testing"

	responsestore "impar-backend/lib/response/store"
	surveystore "impar-backend/lib/survey/store"
	usersstore "impar-backend/lib/users/store"
	"impar-backend/models"
	surveyapimodels "impar-backend/models/api/survey"
	dbmodels "impar-backend/models/db"

	"github.com/stretchr/testify/require"
)

type surveyStoreStub struct {
	rec     *dbmodels.Survey
	updMaps []map[string]interface{}
}

func (s *surveyStoreStub) Create(rec dbmodels.Survey) (string, error) { return rec.ID, nil }
func (s *surveyStoreStub) GetByID(id string) (*dbmodels.Survey, error) {
	return s.rec, nil
}
func (s *surveyStoreStub) List(filter surveystore.Filter) ([]dbmodels.Survey, error) {
	return nil, nil
}
func (s *surveyStoreStub) ListByOwner(ownerID string) ([]dbmodels.Survey, error) {
	return nil, nil
}
func (s *surveyStoreStub) Update(id string, updMap map[string]interface{}) error {
	s.updMaps = append(s.updMaps, updMap)
	return nil
}
func (s *surveyStoreStub) Delete(id string) error { return nil }

type responseStoreStub struct{}

func (responseStoreStub) Create(rec dbmodels.SurveyResponse) (string, error) { return rec.ID, nil }
func (responseStoreStub) ListBySurvey(surveyID string) ([]dbmodels.SurveyResponse, error) {
	return nil, nil
}
func (responseStoreStub) ListByUser(userID string) ([]dbmodels.SurveyResponse, error) {
	return nil, nil
}
func (responseStoreStub) CountBySurvey(surveyID string) (int64, error) { return 0, nil }
func (responseStoreStub) ExistByUserAndSurvey(userID, surveyID string) (bool, error) {
	return false, nil
}

type usersStoreStub struct{}

func (usersStoreStub) Create(rec dbmodels.User) (string, error)           { return rec.ID, nil }
func (usersStoreStub) GetByID(id string) (*dbmodels.User, error)          { return nil, nil }
func (usersStoreStub) GetByEmail(email string) (*dbmodels.User, error)    { return nil, nil }
func (usersStoreStub) ExistByEmail(email string) (bool, error)            { return false, nil }
func (usersStoreStub) ExistByRole(role models.UserRole) (bool, error)     { return false, nil }
func (usersStoreStub) List() ([]dbmodels.User, error)                     { return nil, nil }
func (usersStoreStub) Update(id string, upd map[string]interface{}) error { return nil }
func (usersStoreStub) Delete(id string) error                             { return nil }

func TestUpdate(t *testing.T) {
	boolPtr := func(v bool) *bool { return &v }
	strPtr := func(v string) *string { return &v }
	newImpl := func() (impl, *surveyStoreStub) {
		store := &surveyStoreStub{
			rec: &dbmodels.Survey{
				BaseModel: dbmodels.BaseModel{ID: "survey-1"},
				Title:     "Опрос",
				OwnerID:   "owner-1",
			},
		}
		return impl{
			surveyStore:   store,
			responseStore: responseStoreStub{},
			usersStore:    usersStoreStub{},
		}, store
	}

	t.Run("автор без роли персонала не может сделать опрос избранным", func(t *testing.T) {
		i, store := newImpl()
		_, err := i.Update("survey-1", "owner-1", models.UserRoleUser, surveyapimodels.SurveyUpdateRequest{
			Title:      strPtr("Новый заголовок"),
			IsFeatured: boolPtr(true),
		})
		require.NoError(t, err)
		require.Len(t, store.updMaps, 1)
		require.Contains(t, store.updMaps[0], "title")
		require.NotContains(t, store.updMaps[0], "is_featured")
	})

	t.Run("администратор меняет признак избранного", func(t *testing.T) {
		i, store := newImpl()
		_, err := i.Update("survey-1", "admin-1", models.UserRoleAdmin, surveyapimodels.SurveyUpdateRequest{
			IsFeatured: boolPtr(true),
		})
		require.NoError(t, err)
		require.Len(t, store.updMaps, 1)
		require.Equal(t, true, store.updMaps[0]["is_featured"])
	})

	t.Run("чужой пользователь не может менять опрос", func(t *testing.T) {
		i, _ := newImpl()
		_, err := i.Update("survey-1", "stranger", models.UserRoleUser, surveyapimodels.SurveyUpdateRequest{
			Title: strPtr("Чужой заголовок"),
		})
		require.ErrorIs(t, err, ErrForbidden)
	})
}

var (
	_ surveystore.Provider   = (*surveyStoreStub)(nil)
	_ responsestore.Provider = responseStoreStub{}
	_ usersstore.Provider    = usersStoreStub{}
)
