package service

import (
	"context"
	"fmt"
	"math"

	"ai-roomplanner-be/internal/catalog"
	"ai-roomplanner-be/internal/constant"
	"ai-roomplanner-be/internal/dto"
	"ai-roomplanner-be/internal/entity"
	"ai-roomplanner-be/internal/mapper"
	"ai-roomplanner-be/internal/pkg/logger"
	"ai-roomplanner-be/internal/repository/contract"
	"ai-roomplanner-be/pkg/planner/session"
	"ai-roomplanner-be/pkg/planner/sharelink"
	"ai-roomplanner-be/pkg/planner/state"

	"github.com/google/uuid"
)

type IPlannerService interface {
	CreateSession(ctx context.Context) *dto.SessionResponse
	GetSession(ctx context.Context, sessionId string) *dto.SessionResponse
	DispatchAction(ctx context.Context, sessionId string, req *dto.DispatchActionRequest) (*dto.SessionResponse, error)
	SeedLayout(ctx context.Context, sessionId string) *dto.SessionResponse
	RotateItem(ctx context.Context, sessionId, itemId string) *dto.SessionResponse
	ShareLink(ctx context.Context, sessionId string) (*dto.ShareLinkResponse, error)
	RestoreSession(ctx context.Context, encoded string) *dto.SessionResponse
	DeleteSession(ctx context.Context, sessionId string)
}

type plannerService struct {
	sessions  contract.ISessionRepository
	store     *catalog.Store
	publisher IPublisherService
	clientURL string
	log       logger.ILogger
}

func NewPlannerService(
	sessions contract.ISessionRepository,
	store *catalog.Store,
	publisher IPublisherService,
	clientURL string,
	log logger.ILogger,
) IPlannerService {
	return &plannerService{
		sessions:  sessions,
		store:     store,
		publisher: publisher,
		clientURL: clientURL,
		log:       log,
	}
}

func (s *plannerService) CreateSession(ctx context.Context) *dto.SessionResponse {
	sess := session.New(uuid.NewString())
	s.sessions.Save(sess)

	s.log.Info("planner", "Session created", map[string]interface{}{
		"sessionId": sess.ID,
	})

	res := mapper.ToSessionResponse(sess)
	return &res
}

func (s *plannerService) GetSession(ctx context.Context, sessionId string) *dto.SessionResponse {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil
	}
	res := mapper.ToSessionResponse(sess)
	return &res
}

func (s *plannerService) DispatchAction(ctx context.Context, sessionId string, req *dto.DispatchActionRequest) (*dto.SessionResponse, error) {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil, nil
	}

	action, err := mapper.ActionFromRequest(req, s.store)
	if err != nil {
		return nil, err
	}

	snapshot := sess.Dispatch(action)
	s.sessions.Save(sess)

	if _, isReset := action.(state.Reset); isReset {
		if err := s.publisher.Publish(ctx, constant.TopicPlannerSessionReset, map[string]interface{}{
			"sessionId": sess.ID,
		}); err != nil {
			s.log.Warn("planner", "Failed to publish session reset event", map[string]interface{}{
				"sessionId": sess.ID,
				"error":     err.Error(),
			})
		}
	}

	res := mapper.ToSessionResponseWithState(sess, snapshot)
	return &res, nil
}

// SeedLayout derives a fresh furniture layout from the selected products:
// a 4-per-row grid with a 120-unit pitch starting at (50, 50). Any existing
// layout is replaced wholesale.
func (s *plannerService) SeedLayout(ctx context.Context, sessionId string) *dto.SessionResponse {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil
	}

	snapshot := sess.Snapshot()
	layout := make([]entity.FurniturePlacement, 0, len(snapshot.SelectedProducts))
	for i, p := range snapshot.SelectedProducts {
		layout = append(layout, entity.FurniturePlacement{
			Id:          fmt.Sprintf("%s-%d", p.Id, i),
			ProductId:   p.Id,
			Name:        p.Name,
			Category:    p.Category,
			Subcategory: p.Subcategory,
			Dimensions:  p.Dimensions,
			X:           float64(50 + (i%4)*120),
			Y:           float64(50 + (i/4)*120),
			Rotation:    0,
		})
	}

	next := sess.Dispatch(state.SetFurnitureLayout{Layout: layout})
	s.sessions.Save(sess)

	res := mapper.ToSessionResponseWithState(sess, next)
	return &res
}

// RotateItem swaps the placement's width and depth in place, leaving its
// position untouched. An unknown item id is a no-op.
func (s *plannerService) RotateItem(ctx context.Context, sessionId, itemId string) *dto.SessionResponse {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil
	}

	snapshot := sess.Snapshot()
	layout := make([]entity.FurniturePlacement, len(snapshot.FurnitureLayout))
	copy(layout, snapshot.FurnitureLayout)
	for i := range layout {
		if layout[i].Id != itemId {
			continue
		}
		layout[i].Dimensions.Width, layout[i].Dimensions.Depth = layout[i].Dimensions.Depth, layout[i].Dimensions.Width
		layout[i].Rotation = math.Mod(layout[i].Rotation+90, 360)
	}

	next := sess.Dispatch(state.SetFurnitureLayout{Layout: layout})
	s.sessions.Save(sess)

	res := mapper.ToSessionResponseWithState(sess, next)
	return &res
}

func (s *plannerService) ShareLink(ctx context.Context, sessionId string) (*dto.ShareLinkResponse, error) {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil, nil
	}

	snapshot := sess.Snapshot()
	productIds := make([]string, 0, len(snapshot.SelectedProducts))
	for _, p := range snapshot.SelectedProducts {
		productIds = append(productIds, p.Id)
	}

	encoded, err := sharelink.Encode(sharelink.Payload{
		Room:     snapshot.RoomConfig.Type,
		Products: productIds,
		Budget:   snapshot.Budget.Total,
		Styles:   snapshot.SelectedStyles,
	})
	if err != nil {
		return nil, err
	}

	return &dto.ShareLinkResponse{
		Payload:  encoded,
		ShareURL: fmt.Sprintf("%s/?plan=%s", s.clientURL, encoded),
	}, nil
}

// RestoreSession builds a new session from a share-link payload. A malformed
// payload is logged and yields a fresh default session rather than an error,
// so a stale link still lands the visitor somewhere useful. Unknown product
// ids are skipped.
func (s *plannerService) RestoreSession(ctx context.Context, encoded string) *dto.SessionResponse {
	sess := session.New(uuid.NewString())

	payload, err := sharelink.Decode(encoded)
	if err != nil {
		s.log.Warn("planner", "Ignoring malformed share-link payload", map[string]interface{}{
			"error": err.Error(),
		})
		s.sessions.Save(sess)
		res := mapper.ToSessionResponse(sess)
		return &res
	}

	actions := []state.Action{
		state.SetRoomConfig{Patch: state.RoomConfigPatch{Type: &payload.Room}},
		state.SetBudget{Patch: state.BudgetPatch{Total: &payload.Budget}},
		state.SetStyles{StyleIds: payload.Styles},
	}
	for _, id := range payload.Products {
		if product := s.store.FindProduct(id); product != nil {
			actions = append(actions, state.AddProduct{Product: product})
		}
	}
	actions = append(actions, state.SetStep{Step: constant.StepBooking})

	snapshot := sess.Dispatch(actions...)
	s.sessions.Save(sess)

	s.log.Info("planner", "Session restored from share link", map[string]interface{}{
		"sessionId": sess.ID,
		"products":  len(payload.Products),
	})

	res := mapper.ToSessionResponseWithState(sess, snapshot)
	return &res
}

func (s *plannerService) DeleteSession(ctx context.Context, sessionId string) {
	s.sessions.Delete(sessionId)
}
