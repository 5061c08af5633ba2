package httpapi

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/marketplace/dealchat/internal/domain/deal"
)

// dealPrice accepts a JSON number or a numeric string holding a finite value.
type dealPrice float64

func (p *dealPrice) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if raw == "" || raw == "null" {
		*p = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid price %s", b)
	}
	*p = dealPrice(v)
	return nil
}

type dealRequest struct {
	State string    `json:"state"`
	Price dealPrice `json:"price"`
}

type requestDealRequest struct {
	ChatID int64     `json:"chatId"`
	State  string    `json:"state"`
	Price  dealPrice `json:"price"`
}

func (s *Server) requestDeal(w http.ResponseWriter, r *http.Request) {
	var req requestDealRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if req.ChatID <= 0 {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "chatId required")
		return
	}
	s.applyDeal(w, r, req.ChatID, req.State, float64(req.Price))
}

func (s *Server) requestChatDeal(w http.ResponseWriter, r *http.Request) {
	chatID, err := parseIDParam(r, "chatId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	var req dealRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	s.applyDeal(w, r, chatID, req.State, float64(req.Price))
}

func (s *Server) applyDeal(w http.ResponseWriter, r *http.Request, chatID int64, state string, price float64) {
	auth := authUserFromContext(r.Context())
	t, err := deal.ParseTransition(state)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	view, err := s.dealSvc.RequestDeal(contextFromRequest(r), auth.UserID, chatID, price, t)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"deal": view})
}

func (s *Server) getChatDeal(w http.ResponseWriter, r *http.Request) {
	chatID, err := parseIDParam(r, "chatId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	auth := authUserFromContext(r.Context())
	view, err := s.dealSvc.GetChatDeal(contextFromRequest(r), auth.UserID, chatID)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"deal": view})
}

func (s *Server) getVotes(w http.ResponseWriter, r *http.Request) {
	dealID, err := parseIDParam(r, "dealId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	auth := authUserFromContext(r.Context())
	votes, err := s.dealSvc.GetVotes(contextFromRequest(r), auth.UserID, dealID)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	if votes == nil {
		votes = deal.Votes{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"votes":     votes,
		"voteCount": len(votes),
	})
}
