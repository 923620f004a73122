package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kiowoji/blog-api/internal/database"
	"github.com/kiowoji/blog-api/internal/models"
	"github.com/kiowoji/blog-api/internal/repository"
	"github.com/kiowoji/blog-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *UserHandler
}

// SetupTest runs before each test
func (suite *UserHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.ArticleLike{},
		&models.APIMetric{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	suite.handler = NewUserHandler(services.NewUserService(repository.NewUserRepository(suite.db)))

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *UserHandlerTestSuite) createTestUser(firstName, lastName, email string, age int) *models.User {
	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Age:       age,
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *UserHandlerTestSuite) createContext(method, url string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// TestCreateUser_DerivesFullName tests that fullName is derived on create
func (suite *UserHandlerTestSuite) TestCreateUser_DerivesFullName() {
	body, _ := json.Marshal(map[string]interface{}{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@x.com",
		"age":       30,
	})
	c, w := suite.createContext("POST", "/users", body)

	suite.handler.CreateUser(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "Jane Doe", data["fullName"])
	assert.Equal(suite.T(), float64(0), data["numberOfArticles"])
	assert.NotEmpty(suite.T(), data["id"])
}

// TestCreateUser_LowercasesEmail tests that the stored email is lowercased
func (suite *UserHandlerTestSuite) TestCreateUser_LowercasesEmail() {
	body, _ := json.Marshal(map[string]interface{}{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "Jane.Doe@X.COM",
		"age":       30,
	})
	c, w := suite.createContext("POST", "/users", body)

	suite.handler.CreateUser(c)

	suite.Require().Equal(http.StatusCreated, w.Code)

	var user models.User
	suite.Require().NoError(suite.db.First(&user).Error)
	assert.Equal(suite.T(), "jane.doe@x.com", user.Email)
}

// TestCreateUser_DuplicateEmail tests the unique email constraint
func (suite *UserHandlerTestSuite) TestCreateUser_DuplicateEmail() {
	suite.createTestUser("Jane", "Doe", "jane@x.com", 30)

	body, _ := json.Marshal(map[string]interface{}{
		"firstName": "Janet",
		"lastName":  "Doe",
		"email":     "jane@x.com",
		"age":       31,
	})
	c, w := suite.createContext("POST", "/users", body)

	suite.handler.CreateUser(c)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestCreateUser_InvalidBody tests binding validation
func (suite *UserHandlerTestSuite) TestCreateUser_InvalidBody() {
	body, _ := json.Marshal(map[string]interface{}{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "not-an-email",
	})
	c, w := suite.createContext("POST", "/users", body)

	suite.handler.CreateUser(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestListUsers_SortedByAge tests ascending and descending age sort
func (suite *UserHandlerTestSuite) TestListUsers_SortedByAge() {
	suite.createTestUser("Alice", "Smith", "alice@x.com", 40)
	suite.createTestUser("Brian", "Jones", "brian@x.com", 25)

	c, w := suite.createContext("GET", "/users", nil)
	c.Request.URL.RawQuery = "sortBy=desc"

	suite.handler.ListUsers(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	users := response["data"].([]interface{})
	suite.Require().Len(users, 2)

	first := users[0].(map[string]interface{})
	assert.Equal(suite.T(), "Alice Smith", first["fullName"])
	assert.Equal(suite.T(), float64(40), first["age"])

	// Projection excludes schema internals
	assert.NotContains(suite.T(), first, "numberOfArticles")
	assert.NotContains(suite.T(), first, "firstName")
}

// TestGetUser_WithArticles tests the joined owned-article summaries
func (suite *UserHandlerTestSuite) TestGetUser_WithArticles() {
	user := suite.createTestUser("Jane", "Doe", "jane@x.com", 30)
	suite.Require().NoError(suite.db.Create(&models.Article{
		Title:    "Owned Post",
		Subtitle: "sub",
		OwnerID:  user.ID,
	}).Error)

	c, w := suite.createContext("GET", "/users/"+user.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: user.ID}}

	suite.handler.GetUser(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	articles := data["articles"].([]interface{})
	suite.Require().Len(articles, 1)

	article := articles[0].(map[string]interface{})
	assert.Equal(suite.T(), "Owned Post", article["title"])
	assert.Equal(suite.T(), "sub", article["subtitle"])
	assert.NotContains(suite.T(), article, "description")
}

// TestGetUser_NotFound tests fetching a missing user
func (suite *UserHandlerTestSuite) TestGetUser_NotFound() {
	c, w := suite.createContext("GET", "/users/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	suite.handler.GetUser(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUpdateUser_RecomputesFullName tests that the derived name follows
// the update in the same write
func (suite *UserHandlerTestSuite) TestUpdateUser_RecomputesFullName() {
	user := suite.createTestUser("Jane", "Doe", "jane@x.com", 30)

	body, _ := json.Marshal(map[string]interface{}{
		"firstName": "Janet",
		"lastName":  "Dorian",
		"age":       31,
	})
	c, w := suite.createContext("PUT", "/users/"+user.ID, body)
	c.Params = gin.Params{{Key: "id", Value: user.ID}}

	suite.handler.UpdateUser(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var updated models.User
	suite.Require().NoError(suite.db.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(suite.T(), "Janet Dorian", updated.FullName)
	assert.Equal(suite.T(), 31, updated.Age)
}

// TestUpdateUser_NotFound tests updating a missing user
func (suite *UserHandlerTestSuite) TestUpdateUser_NotFound() {
	body, _ := json.Marshal(map[string]interface{}{
		"firstName": "Jane",
		"lastName":  "Doe",
		"age":       30,
	})
	c, w := suite.createContext("PUT", "/users/missing", body)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	suite.handler.UpdateUser(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestDeleteUser_Cascades tests that deleting a user removes their
// articles and every like edge referencing either side
func (suite *UserHandlerTestSuite) TestDeleteUser_Cascades() {
	victim := suite.createTestUser("Jane", "Doe", "jane@x.com", 30)
	bystander := suite.createTestUser("Alice", "Smith", "alice@x.com", 40)

	victimArticle := &models.Article{Title: "Victim Post", OwnerID: victim.ID}
	suite.Require().NoError(suite.db.Create(victimArticle).Error)
	bystanderArticle := &models.Article{Title: "Bystander Post", OwnerID: bystander.ID}
	suite.Require().NoError(suite.db.Create(bystanderArticle).Error)

	// Bystander likes the victim's article; victim likes the bystander's
	suite.Require().NoError(suite.db.Create(&models.ArticleLike{ArticleID: victimArticle.ID, UserID: bystander.ID}).Error)
	suite.Require().NoError(suite.db.Create(&models.ArticleLike{ArticleID: bystanderArticle.ID, UserID: victim.ID}).Error)

	c, w := suite.createContext("DELETE", "/users/"+victim.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: victim.ID}}

	suite.handler.DeleteUser(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var userCount, articleCount, likeCount int64
	suite.db.Model(&models.User{}).Count(&userCount)
	suite.db.Model(&models.Article{}).Count(&articleCount)
	suite.db.Model(&models.ArticleLike{}).Count(&likeCount)
	assert.Equal(suite.T(), int64(1), userCount)
	assert.Equal(suite.T(), int64(1), articleCount)
	assert.Equal(suite.T(), int64(0), likeCount)

	var survivor models.Article
	suite.Require().NoError(suite.db.First(&survivor).Error)
	assert.Equal(suite.T(), bystander.ID, survivor.OwnerID)
}

// TestDeleteUser_NotFound tests that deleting a missing user performs
// no side-effecting writes
func (suite *UserHandlerTestSuite) TestDeleteUser_NotFound() {
	user := suite.createTestUser("Jane", "Doe", "jane@x.com", 30)
	suite.Require().NoError(suite.db.Create(&models.Article{Title: "Kept Post", OwnerID: user.ID}).Error)

	c, w := suite.createContext("DELETE", "/users/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	suite.handler.DeleteUser(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var userCount, articleCount int64
	suite.db.Model(&models.User{}).Count(&userCount)
	suite.db.Model(&models.Article{}).Count(&articleCount)
	assert.Equal(suite.T(), int64(1), userCount)
	assert.Equal(suite.T(), int64(1), articleCount)
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
