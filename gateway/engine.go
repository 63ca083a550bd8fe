package gateway

import (
	"github.com/gin-gonic/gin"
	"github.com/pdcgo/site_ledger_service/authorization"
)

type RouteRegister interface {
	RegisterRoutes(r gin.IRouter)
}

func NewEngine(mode string) *gin.Engine {
	if mode != "" {
		gin.SetMode(mode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger())
	return engine
}

// Mount puts every handler behind bearer authentication.
func Mount(engine *gin.Engine, auth authorization.Authorization, handlers ...RouteRegister) {
	group := engine.Group("", Authenticate(auth))
	for _, handler := range handlers {
		handler.RegisterRoutes(group)
	}
}
