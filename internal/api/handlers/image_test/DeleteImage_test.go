package imagetest

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ImageStyler/internal/model"
	"ImageStyler/internal/repository/mocks"
)

func TestDeleteImage(t *testing.T) {
	record := model.ImageRecord{
		ID:           10,
		OriginalURL:  "https://cdn.example.com/images/uploads/1-a.png",
		ProcessedURL: "https://res.example.com/demo/image/fetch/f_png/https://cdn.example.com/images/uploads/1-a.png",
	}

	tests := []struct {
		name           string
		setupMock      func(*mocks.MockStorager, *mocks.MockImageStore, int)
		id             string
		expectedStatus int
		expectedData   map[string]string
	}{
		{
			name: "delete image success",
			setupMock: func(db *mocks.MockStorager, is *mocks.MockImageStore, id int) {
				db.On("GetRecord", mock.Anything, id).Return(record, nil).Once()
				is.On("ObjectNameFromURL", record.OriginalURL).Return("uploads/1-a.png", nil).Once()
				is.On("Delete", mock.Anything, "uploads/1-a.png").Return(nil).Once()
				db.On("DeleteRecord", mock.Anything, id).Return(nil).Once()
			},
			id:             "10",
			expectedStatus: http.StatusOK,
			expectedData: map[string]string{
				"result": "image delete",
			},
		},
		{
			name: "delete image not found",
			setupMock: func(db *mocks.MockStorager, is *mocks.MockImageStore, id int) {
				db.On("GetRecord", mock.Anything, id).Return(model.ImageRecord{}, sql.ErrNoRows).Once()
			},
			id:             "10",
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "blob removal failure keeps the record",
			setupMock: func(db *mocks.MockStorager, is *mocks.MockImageStore, id int) {
				db.On("GetRecord", mock.Anything, id).Return(record, nil).Once()
				is.On("ObjectNameFromURL", record.OriginalURL).Return("uploads/1-a.png", nil).Once()
				is.On("Delete", mock.Anything, "uploads/1-a.png").Return(errors.New("storage unavailable")).Once()
				// DeleteRecord must not be called.
			},
			id:             "10",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := mocks.NewMockStorager(t)
			mockImageStorage := mocks.NewMockImageStore(t)
			mockProducer := mocks.NewMockEventProducer(t)

			id, err := strconv.Atoi(tt.id)
			require.NoError(t, err)

			tt.setupMock(mockDB, mockImageStorage, id)

			h := newHandler(mockDB, mockImageStorage, mockProducer)

			rr := httptest.NewRecorder()
			g, _ := gin.CreateTestContext(rr)
			g.Request = httptest.NewRequest("DELETE", fmt.Sprintf("/image/%s", tt.id), nil)
			g.Params = gin.Params{
				gin.Param{Key: "id", Value: tt.id},
			}

			h.DeleteImage(g)

			require.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedData != nil {
				var response map[string]string
				err = json.Unmarshal(rr.Body.Bytes(), &response)
				require.NoError(t, err)
				require.Equal(t, tt.expectedData["result"], response["result"])
			}

			mockDB.AssertExpectations(t)
			mockImageStorage.AssertExpectations(t)
		})
	}
}
