package api

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"budgeto/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "category", "name", "amount", "date",
		"created_at", "updated_at", "deleted_at",
	})
}

func TestExpenseHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 预算 25000，已支出 10000，新增 1500 不超
	mock.ExpectQuery("SELECT .* FROM `budget_settings`").
		WithArgs(models.DefaultUserID, 1).
		WillReturnRows(settingsRows(50000, 50, 30, 20))
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(models.DefaultUserID, models.CategoryNeeds).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(10000))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"category":"needs","name":"Groceries","amount":1500,"date":"2025-06-15"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	resp := parseResponse(t, w)
	assert.Equal(t, "创建成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_BudgetExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 预算 25000，已支出 24000，新增 1500 超出，整体拒绝
	mock.ExpectQuery("SELECT .* FROM `budget_settings`").
		WithArgs(models.DefaultUserID, 1).
		WillReturnRows(settingsRows(50000, 50, 30, 20))
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(models.DefaultUserID, models.CategoryNeeds).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(24000))

	router := gin.New()
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"category":"needs","name":"Rent","amount":1500}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "超出预算")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_ZeroBudgetBootstrap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// needs 比例为 0 即预算为 0：首笔支出自动把预算设为支出金额
	// 1500 / 50000 = 3%
	mock.ExpectQuery("SELECT .* FROM `budget_settings`").
		WithArgs(models.DefaultUserID, 1).
		WillReturnRows(settingsRows(50000, 0, 30, 20))
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(models.DefaultUserID, models.CategoryNeeds).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `budget_settings`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"category":"needs","name":"Groceries","amount":1500}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_InvalidCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"category":"luxury","name":"Watch","amount":1500}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "无效的预算类别")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count").
		WithArgs(models.DefaultUserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(expenseRows().
			AddRow(2, models.DefaultUserID, "needs", "Rent", 20000, time.Now(), time.Now(), time.Now(), nil).
			AddRow(1, models.DefaultUserID, "needs", "Groceries", 1500, time.Now(), time.Now(), time.Now(), nil))

	router := gin.New()
	router.GET("/expenses", NewExpenseHandler().List)

	req := httptest.NewRequest("GET", "/expenses?page=1&page_size=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	resp := parseResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	assert.Len(t, data["list"], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_BudgetExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 改大金额导致超预算时拒绝，原记录不变
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(1, models.DefaultUserID, 1).
		WillReturnRows(expenseRows().
			AddRow(1, models.DefaultUserID, "needs", "Groceries", 1500, time.Now(), time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `budget_settings`").
		WithArgs(models.DefaultUserID, 1).
		WillReturnRows(settingsRows(50000, 50, 30, 20))
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(models.DefaultUserID, models.CategoryNeeds, 1).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(23000))

	router := gin.New()
	router.PUT("/expenses/:id", NewExpenseHandler().Update)

	body := `{"amount":3000}`
	req := httptest.NewRequest("PUT", "/expenses/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "超出预算")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Get_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(99, models.DefaultUserID, 1).
		WillReturnRows(expenseRows())

	router := gin.New()
	router.GET("/expenses/:id", NewExpenseHandler().Get)

	req := httptest.NewRequest("GET", "/expenses/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(1, models.DefaultUserID, 1).
		WillReturnRows(expenseRows().
			AddRow(1, models.DefaultUserID, "needs", "Groceries", 1500, time.Now(), time.Now(), time.Now(), nil))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/expenses/:id", NewExpenseHandler().Delete)

	req := httptest.NewRequest("DELETE", "/expenses/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	resp := parseResponse(t, w)
	assert.Equal(t, "删除成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
