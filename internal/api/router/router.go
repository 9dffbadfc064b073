package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	licensehdl "github.com/licensure/licensure/internal/api/handlers/license"
	"github.com/licensure/licensure/internal/api/handlers/maillog"
	personhdl "github.com/licensure/licensure/internal/api/handlers/person"
	smtphdl "github.com/licensure/licensure/internal/api/handlers/smtp"
	templatehdl "github.com/licensure/licensure/internal/api/handlers/template"
)

func New(
	license *licensehdl.Handler,
	person *personhdl.Handler,
	mailLog *maillog.Handler,
	template *templatehdl.Handler,
	smtp *smtphdl.Handler,
) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")

	licenses := api.Group("/licenses")
	licenses.GET("", license.List)
	licenses.POST("", license.Create)
	licenses.PUT("/:id", license.Update)
	licenses.DELETE("/:id", license.Delete)
	licenses.POST("/:id/notify", license.Notify)

	people := api.Group("/people")
	people.GET("", person.List)
	people.GET("/:id", person.Get)
	people.POST("", person.Create)
	people.PUT("/:id", person.Update)
	people.DELETE("/:id", person.Delete)

	api.GET("/mail-logs", mailLog.List)

	api.GET("/message-templates", template.Get)
	api.PUT("/message-templates", template.Update)

	api.GET("/smtp-settings", smtp.Get)
	api.PUT("/smtp-settings", smtp.Update)
	api.POST("/mail-test", smtp.SendTest)

	return e
}
