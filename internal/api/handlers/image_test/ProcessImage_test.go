package imagetest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ImageStyler/internal/repository/mocks"
)

func createJSONRequest(t *testing.T, body string) *http.Request {
	req := httptest.NewRequest("POST", "/process-image", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestProcessImage(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockStorager, *mocks.MockEventProducer)
		expectedStatus int
		expectedURL    string
	}{
		{
			name: "defaults compile to f_png",
			body: `{"publicUrl":"https://cdn.example.com/a.png","options":{"color":"none","watermark":false}}`,
			setupMock: func(db *mocks.MockStorager, prod *mocks.MockEventProducer) {
				db.On("CreateRecord", mock.Anything, mock.Anything).Return(1, nil).Once()
				prod.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedURL:    renderEndpoint + "/fetch/f_png/https://cdn.example.com/a.png",
		},
		{
			name: "missing publicUrl",
			body: `{"options":{"color":"sepia","watermark":false}}`,
			setupMock: func(db *mocks.MockStorager, prod *mocks.MockEventProducer) {
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing options",
			body: `{"publicUrl":"https://cdn.example.com/a.png"}`,
			setupMock: func(db *mocks.MockStorager, prod *mocks.MockEventProducer) {
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "persist failure still returns the processed url",
			body: `{"publicUrl":"https://cdn.example.com/a.png","options":{"color":"grayscale","watermark":false}}`,
			setupMock: func(db *mocks.MockStorager, prod *mocks.MockEventProducer) {
				db.On("CreateRecord", mock.Anything, mock.Anything).Return(0, errors.New("insert failed")).Once()
			},
			expectedStatus: http.StatusOK,
			expectedURL:    renderEndpoint + "/fetch/e_grayscale/https://cdn.example.com/a.png",
		},
		{
			name: "source url with query is rejected",
			body: `{"publicUrl":"https://cdn.example.com/a.png?token=1","options":{"color":"none","watermark":false}}`,
			setupMock: func(db *mocks.MockStorager, prod *mocks.MockEventProducer) {
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := mocks.NewMockStorager(t)
			mockImageStorage := mocks.NewMockImageStore(t)
			mockProducer := mocks.NewMockEventProducer(t)
			tt.setupMock(mockDB, mockProducer)
			h := newHandler(mockDB, mockImageStorage, mockProducer)

			rr := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rr)
			c.Request = createJSONRequest(t, tt.body)

			h.ProcessImage(c)
			require.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedURL != "" {
				var response map[string]string
				err := json.Unmarshal(rr.Body.Bytes(), &response)
				require.NoError(t, err)
				require.Equal(t, tt.expectedURL, response["processedUrl"])
			}

			mockDB.AssertExpectations(t)
			mockProducer.AssertExpectations(t)
		})
	}
}

func TestProcessImageWatermarkFallback(t *testing.T) {
	mockDB := mocks.NewMockStorager(t)
	mockImageStorage := mocks.NewMockImageStore(t)
	mockProducer := mocks.NewMockEventProducer(t)

	mockDB.On("CreateRecord", mock.Anything, mock.Anything).Return(2, nil).Once()
	mockProducer.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	h := newHandler(mockDB, mockImageStorage, mockProducer)

	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	c.Request = createJSONRequest(t, `{"publicUrl":"https://cdn.example.com/a.png","options":{"color":"none","watermark":true},"watermarkText":"   "}`)

	h.ProcessImage(c)
	require.Equal(t, http.StatusOK, rr.Code)

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Equal(t,
		renderEndpoint+"/fetch/l_text:Arial_24:Default%20Text,co_white,g_south_east,x_10,y_10/https://cdn.example.com/a.png",
		response["processedUrl"],
	)
}
