package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"ai-roomplanner-be/internal/bootstrap"
	"ai-roomplanner-be/internal/catalog"
	"ai-roomplanner-be/internal/config"
	"ai-roomplanner-be/internal/dto"
	"ai-roomplanner-be/internal/pkg/serverutils"
	"ai-roomplanner-be/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	// Keep the simulated analysis short so the polling test stays fast.
	t.Setenv("PLANNER_ANALYSIS_DELAY", "50ms")
	t.Setenv("SMTP_HOST", "")

	cfg := config.Load()
	store := catalog.MustLoad()
	container := bootstrap.NewContainer(store, cfg)
	srv := server.New(cfg, container)
	return srv.GetApp()
}

func postJSON(t *testing.T, app *fiber.App, url string, payload interface{}) (*serverutils.BaseResponse[json.RawMessage], int) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest("POST", url, &body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var result serverutils.BaseResponse[json.RawMessage]
	json.NewDecoder(resp.Body).Decode(&result)
	return &result, resp.StatusCode
}

func getJSON(t *testing.T, app *fiber.App, url string) (*serverutils.BaseResponse[json.RawMessage], int) {
	t.Helper()

	req := httptest.NewRequest("GET", url, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var result serverutils.BaseResponse[json.RawMessage]
	json.NewDecoder(resp.Body).Decode(&result)
	return &result, resp.StatusCode
}

func decodeSession(t *testing.T, raw json.RawMessage) dto.SessionResponse {
	t.Helper()
	var sess dto.SessionResponse
	require.NoError(t, json.Unmarshal(raw, &sess))
	return sess
}

func dispatch(t *testing.T, app *fiber.App, sessionId, actionType string, payload interface{}) dto.SessionResponse {
	t.Helper()

	req := dto.DispatchActionRequest{Type: actionType}
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		req.Payload = raw
	}

	result, status := postJSON(t, app, "/api/planner/v1/sessions/"+sessionId+"/actions", req)
	require.Equal(t, 200, status)
	return decodeSession(t, result.Data)
}

func TestPlannerWizardFlow(t *testing.T) {
	app := newTestApp(t)

	// Create a session and sanity-check the defaults.
	result, status := postJSON(t, app, "/api/planner/v1/sessions", nil)
	require.Equal(t, 201, status)
	require.True(t, result.Success)

	sess := decodeSession(t, result.Data)
	sessionId := sess.Id
	require.NotEmpty(t, sessionId)
	assert.Equal(t, 0, sess.CurrentStep)
	assert.Equal(t, 15000, sess.Budget.Total)
	assert.Equal(t, "couple", sess.RoomConfig.FamilySize)
	assert.Len(t, sess.Steps, 6)

	t.Run("Configure room and budget", func(t *testing.T) {
		sess := dispatch(t, app, sessionId, dto.ActionSetRoomConfig, map[string]interface{}{
			"type":  "living-room",
			"width": 4.5,
		})
		assert.Equal(t, "living-room", sess.RoomConfig.Type)
		assert.Equal(t, 4.5, sess.RoomConfig.Width)
		assert.Equal(t, 5.0, sess.RoomConfig.Length)

		sess = dispatch(t, app, sessionId, dto.ActionSetBudget, map[string]interface{}{
			"total": 12000,
		})
		assert.Equal(t, 12000, sess.Budget.Total)
		assert.True(t, sess.Budget.SmartBudget)

		// Oversized rooms clamp instead of erroring.
		sess = dispatch(t, app, sessionId, dto.ActionSetRoomConfig, map[string]interface{}{
			"length": 40.0,
		})
		assert.Equal(t, 15.0, sess.RoomConfig.Length)
	})

	t.Run("Select styles", func(t *testing.T) {
		sess := dispatch(t, app, sessionId, dto.ActionToggleStyle, dto.ToggleStylePayload{StyleId: "scandinavian"})
		assert.Equal(t, []string{"scandinavian"}, sess.SelectedStyles)

		sess = dispatch(t, app, sessionId, dto.ActionToggleStyle, dto.ToggleStylePayload{StyleId: "modern"})
		assert.Len(t, sess.SelectedStyles, 2)

		sess = dispatch(t, app, sessionId, dto.ActionToggleStyle, dto.ToggleStylePayload{StyleId: "modern"})
		assert.Equal(t, []string{"scandinavian"}, sess.SelectedStyles)
	})

	var productIds []string
	t.Run("Generate recommendations and fill the plan", func(t *testing.T) {
		result, status := postJSON(t, app, "/api/recommendation/v1/sessions/"+sessionId+"/generate", nil)
		require.Equal(t, 200, status)

		var rec dto.RecommendationResponse
		require.NoError(t, json.Unmarshal(result.Data, &rec))
		require.NotEmpty(t, rec.Products)
		assert.LessOrEqual(t, rec.TotalPrice, rec.Budget)
		assert.NotEmpty(t, rec.Bundles)

		for _, p := range rec.Products {
			productIds = append(productIds, p.Id)
			sess := dispatch(t, app, sessionId, dto.ActionAddProduct, dto.ProductRefPayload{ProductId: p.Id})
			assert.NotEmpty(t, sess.SelectedProducts)
		}

		// Adding the same product twice stays idempotent.
		sess := dispatch(t, app, sessionId, dto.ActionAddProduct, dto.ProductRefPayload{ProductId: productIds[0]})
		assert.Len(t, sess.SelectedProducts, len(productIds))
	})

	t.Run("Seed and rotate the layout", func(t *testing.T) {
		result, status := postJSON(t, app, "/api/planner/v1/sessions/"+sessionId+"/layout/seed", nil)
		require.Equal(t, 200, status)

		sess := decodeSession(t, result.Data)
		require.Len(t, sess.FurnitureLayout, len(productIds))
		assert.Equal(t, 50.0, sess.FurnitureLayout[0].X)
		assert.Equal(t, 50.0, sess.FurnitureLayout[0].Y)
		if len(sess.FurnitureLayout) > 4 {
			assert.Equal(t, 170.0, sess.FurnitureLayout[4].Y)
		}

		item := sess.FurnitureLayout[0]
		result, status = postJSON(t, app, fmt.Sprintf("/api/planner/v1/sessions/%s/layout/%s/rotate", sessionId, item.Id), nil)
		require.Equal(t, 200, status)

		rotated := decodeSession(t, result.Data)
		assert.Equal(t, item.Dimensions.Width, rotated.FurnitureLayout[0].Dimensions.Depth)
		assert.Equal(t, item.Dimensions.Depth, rotated.FurnitureLayout[0].Dimensions.Width)
		assert.Equal(t, item.X, rotated.FurnitureLayout[0].X)

		sess = dispatch(t, app, sessionId, dto.ActionUpdateFurniturePosition, dto.UpdateFurniturePositionPayload{
			Id: item.Id, X: 200, Y: 310,
		})
		assert.Equal(t, 200.0, sess.FurnitureLayout[0].X)
		assert.Equal(t, 310.0, sess.FurnitureLayout[0].Y)
	})

	t.Run("Removing a product cascades to the layout", func(t *testing.T) {
		removed := productIds[0]
		sess := dispatch(t, app, sessionId, dto.ActionRemoveProduct, dto.ProductRefPayload{ProductId: removed})
		for _, p := range sess.SelectedProducts {
			assert.NotEqual(t, removed, p.Id)
		}
		for _, item := range sess.FurnitureLayout {
			assert.NotEqual(t, removed, item.ProductId)
		}

		// Put it back for the rest of the flow.
		dispatch(t, app, sessionId, dto.ActionAddProduct, dto.ProductRefPayload{ProductId: removed})
	})

	t.Run("Share link round trip", func(t *testing.T) {
		result, status := getJSON(t, app, "/api/planner/v1/sessions/"+sessionId+"/share-link")
		require.Equal(t, 200, status)

		var link dto.ShareLinkResponse
		require.NoError(t, json.Unmarshal(result.Data, &link))
		require.NotEmpty(t, link.Payload)
		assert.Contains(t, link.ShareURL, link.Payload)

		result, status = postJSON(t, app, "/api/planner/v1/sessions/restore", dto.RestoreSessionRequest{Payload: link.Payload})
		require.Equal(t, 201, status)

		restored := decodeSession(t, result.Data)
		assert.NotEqual(t, sessionId, restored.Id)
		assert.Equal(t, "living-room", restored.RoomConfig.Type)
		assert.Equal(t, 12000, restored.Budget.Total)
		assert.Equal(t, 5, restored.CurrentStep)
		assert.Len(t, restored.SelectedProducts, len(productIds))
	})

	t.Run("Restore tolerates a malformed payload", func(t *testing.T) {
		result, status := postJSON(t, app, "/api/planner/v1/sessions/restore", dto.RestoreSessionRequest{Payload: "!!not-base64!!"})
		require.Equal(t, 201, status)

		restored := decodeSession(t, result.Data)
		assert.Equal(t, 0, restored.CurrentStep)
		assert.Empty(t, restored.SelectedProducts)
	})

	t.Run("Inspiration analysis delivers ranked styles", func(t *testing.T) {
		result, status := postJSON(t, app, "/api/analysis/v1/sessions/"+sessionId+"/inspiration", dto.SubmitInspirationRequest{
			ImageRef:   "uploads/inspiration-1.jpg",
			ColorHints: []string{"#FFFFFF", "#D2B48C"},
		})
		require.Equal(t, 202, status)

		sess := decodeSession(t, result.Data)
		require.NotNil(t, sess.InspirationImage)

		var analysis dto.AnalysisStatusResponse
		deadline := time.Now().Add(3 * time.Second)
		for {
			result, status = getJSON(t, app, "/api/analysis/v1/sessions/"+sessionId+"/result")
			require.NoError(t, json.Unmarshal(result.Data, &analysis))
			if status == 200 && !analysis.IsAnalyzing {
				break
			}
			require.True(t, time.Now().Before(deadline), "analysis never finished")
			time.Sleep(20 * time.Millisecond)
		}

		require.NotEmpty(t, analysis.Detected)
		for i := 1; i < len(analysis.Detected); i++ {
			assert.GreaterOrEqual(t, analysis.Detected[i-1].Confidence, analysis.Detected[i].Confidence)
		}
		for _, score := range analysis.Detected {
			assert.LessOrEqual(t, score.Confidence, 95)
		}
	})

	t.Run("Removing the image clears detected styles", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/analysis/v1/sessions/"+sessionId+"/inspiration", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		var result serverutils.BaseResponse[json.RawMessage]
		json.NewDecoder(resp.Body).Decode(&result)
		sess := decodeSession(t, result.Data)
		assert.Nil(t, sess.InspirationImage)
		assert.Empty(t, sess.DetectedStyles)
	})

	t.Run("Book consultation completes the plan", func(t *testing.T) {
		result, status := postJSON(t, app, "/api/consultation/v1/sessions/"+sessionId+"/book", dto.BookConsultationRequest{
			Date:     "2026-09-15",
			TimeSlot: "10:00",
			Name:     "Sara Al-Otaibi",
			Email:    "sara@example.com",
			Phone:    "+966500000000",
			Type:     "online",
		})
		require.Equal(t, 200, status)

		var booking dto.BookConsultationResponse
		require.NoError(t, json.Unmarshal(result.Data, &booking))
		assert.True(t, booking.IsComplete)
		assert.Equal(t, "10:00", booking.TimeSlot)
	})

	t.Run("Checkout reports totals", func(t *testing.T) {
		result, status := postJSON(t, app, "/api/consultation/v1/sessions/"+sessionId+"/checkout", nil)
		require.Equal(t, 200, status)

		var checkout dto.CheckoutResponse
		require.NoError(t, json.Unmarshal(result.Data, &checkout))
		assert.True(t, checkout.IsComplete)
		assert.Equal(t, len(productIds), checkout.ItemCount)
		assert.Positive(t, checkout.TotalPrice)
		assert.Equal(t, 12000-checkout.TotalPrice, checkout.Savings)
	})

	t.Run("Reset returns to defaults", func(t *testing.T) {
		sess := dispatch(t, app, sessionId, dto.ActionReset, nil)
		assert.Equal(t, 0, sess.CurrentStep)
		assert.Equal(t, 15000, sess.Budget.Total)
		assert.Empty(t, sess.SelectedProducts)
		assert.False(t, sess.IsComplete)
	})
}

func TestPlannerValidationAndNotFound(t *testing.T) {
	app := newTestApp(t)

	t.Run("Unknown session is 404", func(t *testing.T) {
		_, status := getJSON(t, app, "/api/planner/v1/sessions/does-not-exist")
		assert.Equal(t, 404, status)

		_, status = postJSON(t, app, "/api/consultation/v1/sessions/does-not-exist/checkout", nil)
		assert.Equal(t, 404, status)
	})

	t.Run("Booking rejects a bad email", func(t *testing.T) {
		result, status := postJSON(t, app, "/api/planner/v1/sessions", nil)
		require.Equal(t, 201, status)
		sessionId := decodeSession(t, result.Data).Id

		_, status = postJSON(t, app, "/api/consultation/v1/sessions/"+sessionId+"/book", dto.BookConsultationRequest{
			Date:     "2026-09-15",
			TimeSlot: "10:00",
			Name:     "Sara",
			Email:    "not-an-email",
			Phone:    "+966500000000",
		})
		assert.Equal(t, 400, status)
	})

	t.Run("Recommendation request requires a room", func(t *testing.T) {
		_, status := postJSON(t, app, "/api/recommendation/v1/generate", dto.GenerateRecommendationsRequest{
			Budget: 5000,
		})
		assert.Equal(t, 400, status)
	})

	t.Run("Unknown room yields an empty result", func(t *testing.T) {
		result, status := postJSON(t, app, "/api/recommendation/v1/generate", dto.GenerateRecommendationsRequest{
			RoomId: "garage",
			Budget: 5000,
		})
		require.Equal(t, 200, status)

		var rec dto.RecommendationResponse
		require.NoError(t, json.Unmarshal(result.Data, &rec))
		assert.Empty(t, rec.Products)
		assert.Equal(t, 0, rec.TotalPrice)
	})

	t.Run("Alternatives requires a budget", func(t *testing.T) {
		_, status := getJSON(t, app, "/api/recommendation/v1/alternatives/sofa-klippan")
		assert.Equal(t, 400, status)

		result, status := getJSON(t, app, "/api/recommendation/v1/alternatives/sofa-klippan?budget=3000")
		require.Equal(t, 200, status)

		var alts dto.AlternativesResponse
		require.NoError(t, json.Unmarshal(result.Data, &alts))
		for _, p := range alts.Alternatives {
			assert.GreaterOrEqual(t, float64(p.Price), 1500.0)
			assert.LessOrEqual(t, float64(p.Price), 3600.0)
		}
	})

	t.Run("Catalog debug dump", func(t *testing.T) {
		result, status := getJSON(t, app, "/api/catalog/v1/debug")
		require.Equal(t, 200, status)

		var dump dto.DebugCatalogResponse
		require.NoError(t, json.Unmarshal(result.Data, &dump))
		assert.NotEmpty(t, dump.Products)
		assert.NotEmpty(t, dump.Styles)
		assert.NotEmpty(t, dump.Rooms)
		assert.Len(t, dump.TimeSlots, 9)
		assert.Len(t, dump.Steps, 6)
	})
}
