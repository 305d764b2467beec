package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vmachado/escritorio-api/internal/middleware"
)

// Router registers every API route with its access gates. Gate order is
// fixed: session resolution, then authentication, then the forced
// password-change gate, then role checks.
type Router struct {
	Auth                *AuthHandler
	Clientes            *ClienteHandler
	Documentos          *DocumentoHandler
	StatusDocumentos    *StatusDocumentoHandler
	DocumentosJuridicos *DocumentoJuridicoHandler
	Usuarios            *UserHandler
	Logs                *AuditHandler
	Dashboard           *DashboardHandler
	RefData             *RefDataHandler
}

// Register wires all routes under the API prefix. The session middleware is
// expected to be installed on the engine already.
func (rt *Router) Register(engine *gin.Engine, apiPrefix string) {
	api := engine.Group(apiPrefix)

	// Authentication surface: reachable before the password gate so users
	// on a provisional password can see who they are and rotate it.
	api.POST("/login", rt.Auth.Login)
	api.POST("/logout", middleware.RequireAuth(), rt.Auth.Logout)
	api.GET("/user", middleware.RequireAuth(), rt.Auth.Me)
	api.POST("/change-password", middleware.RequireAuth(), rt.Auth.ChangePassword)

	// Signed download links carry their own token and work without a
	// session; the handler enforces token-or-session itself.
	api.GET("/documentos/:id/download", rt.Documentos.Download)

	// Business surface: authenticated users past the first-access gate.
	authed := api.Group("", middleware.RequireAuth(), middleware.RequirePasswordChanged())

	authed.GET("/clientes", rt.Clientes.List)
	authed.POST("/clientes", rt.Clientes.Create)
	authed.GET("/clientes/:id", rt.Clientes.Get)
	authed.PATCH("/clientes/:id", rt.Clientes.Update)
	authed.DELETE("/clientes/:id", rt.Clientes.Delete)

	authed.GET("/documentos", rt.Documentos.List)
	authed.POST("/documentos/upload", rt.Documentos.Upload)
	authed.GET("/documentos/:id", rt.Documentos.Get)
	authed.PATCH("/documentos/:id", rt.Documentos.Update)
	authed.DELETE("/documentos/:id", rt.Documentos.Delete)
	authed.GET("/documentos/:id/url", rt.Documentos.DownloadURL)

	authed.GET("/status-documentos", rt.StatusDocumentos.List)

	authed.GET("/documentos-juridicos", rt.DocumentosJuridicos.List)
	authed.POST("/documentos-juridicos", rt.DocumentosJuridicos.Create)
	authed.GET("/documentos-juridicos/:id", rt.DocumentosJuridicos.Get)
	authed.PATCH("/documentos-juridicos/:id", rt.DocumentosJuridicos.Update)
	authed.DELETE("/documentos-juridicos/:id", rt.DocumentosJuridicos.Delete)
	authed.GET("/documentos-juridicos/:id/pdf", rt.DocumentosJuridicos.PDF)

	authed.GET("/dashboard/stats", rt.Dashboard.Stats)
	authed.GET("/dashboard/atividades-recentes", rt.Dashboard.AtividadesRecentes)

	authed.GET("/cep/:cep", rt.RefData.CEP)
	authed.GET("/ibge/estados", rt.RefData.Estados)
	authed.GET("/ibge/municipios/:uf", rt.RefData.Municipios)

	// Administrative surface.
	admin := authed.Group("", middleware.RequireAdmin())

	admin.GET("/usuarios", rt.Usuarios.List)
	admin.POST("/usuarios", rt.Usuarios.Create)
	admin.PATCH("/usuarios/:id", rt.Usuarios.Update)
	admin.PATCH("/usuarios/:id/toggle-ativo", rt.Usuarios.SetAtivo)

	admin.POST("/status-documentos", rt.StatusDocumentos.Create)
	admin.PATCH("/status-documentos/:id", rt.StatusDocumentos.Update)
	admin.DELETE("/status-documentos/:id", rt.StatusDocumentos.Delete)

	admin.GET("/logs", rt.Logs.List)
	admin.GET("/logs/export", rt.Logs.Export)
}
