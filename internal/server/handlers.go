package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quantfeed/tradeboard/internal/copytrade"
	"github.com/quantfeed/tradeboard/internal/model"
)

func (s *Server) hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

func (s *Server) getPrice(c *gin.Context) {
	base, quote := c.Param("base"), c.Param("quote")

	pp, err := s.market.LivePrice(c.Request.Context(), base, quote)
	if err != nil {
		s.logger.Warn("price fetch failed",
			"base", base,
			"quote", quote,
			"error", err,
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to fetch price for " + base + "/" + quote})
		return
	}

	c.JSON(http.StatusOK, pp)
}

func (s *Server) getPriceHistory(c *gin.Context) {
	symbol := c.Param("base") + "/" + c.Param("quote")

	prices, ok := s.market.History(symbol)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no history for " + symbol})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol": symbol,
		"prices": prices,
		"count":  len(prices),
	})
}

func (s *Server) getLeaderboard(c *gin.Context) {
	top := s.copy.TopTraders(s.cfg.Leaderboard.TopN)

	c.JSON(http.StatusOK, model.LeaderboardResponse{
		TopTraders: top,
		Count:      len(top),
	})
}

type registerTraderRequest struct {
	Name           string  `json:"name" binding:"required"`
	ROI            float64 `json:"roi"`
	PortfolioValue float64 `json:"portfolio_value"`
}

func (s *Server) registerTrader(c *gin.Context) {
	var req registerTraderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t := s.copy.RegisterTrader(model.Trader{
		Name:           req.Name,
		ROI:            req.ROI,
		PortfolioValue: req.PortfolioValue,
	})
	c.JSON(http.StatusCreated, t)
}

func (s *Server) getTrader(c *gin.Context) {
	t, ok := s.copy.Trader(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "trader not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

type addFollowerRequest struct {
	FollowerID string `json:"follower_id" binding:"required"`
}

func (s *Server) addFollower(c *gin.Context) {
	var req addFollowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.copy.AddFollower(c.Param("id"), req.FollowerID); err != nil {
		if errors.Is(err, copytrade.ErrTraderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "following"})
}

type submitTradeRequest struct {
	LeaderID string  `json:"leader_id" binding:"required"`
	Side     string  `json:"side" binding:"required"`
	Symbol   string  `json:"symbol" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
}

func (s *Server) submitTrade(c *gin.Context) {
	var req submitTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.copy.SubmitOrder(model.Order{
		LeaderID: req.LeaderID,
		Side:     model.Side(req.Side),
		Symbol:   req.Symbol,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, copytrade.ErrLeaderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, copytrade.ErrInvalidSide):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusAccepted, order)
}
