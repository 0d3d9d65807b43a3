package main

import (
	"html/template"
	"log"
	"strings"
	"time"

	"yatube/auth"
	"yatube/config"
	"yatube/db"
	"yatube/handlers"
	"yatube/models"
	"yatube/pagecache"
	"yatube/storage"
	"yatube/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "yatube_session"
	sessionExpirationTime = 14 * 86400 // 2 weeks
	mediaCacheTime        = 30 * 86400 // uploaded files never change in place
)

func setupRouter() *gin.Engine {
	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(handlers.ServerError))
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        30 * 24 * time.Hour,
	}))

	// HTML templates
	router.SetFuncMap(template.FuncMap{
		"formatTime": func(ts int64) string {
			return time.Unix(ts, 0).Format("2 Jan 2006 15:04")
		},
		"truncate": func(n int, s string) string {
			runes := []rune(s)
			if len(runes) <= n {
				return s
			}
			return string(runes[:n]) + "…"
		},
	})
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media/"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default

	router.NoRoute(handlers.NotFound)

	// Front page, cached for a short fixed window
	indexTTL := time.Duration(config.INDEX_CACHE_SECONDS) * time.Second
	router.GET("/", pagecache.CachePage(pagecache.Instance, "index_page", indexTTL), handlers.Index)

	// Public post pages
	router.GET("/group/:slug/", handlers.GroupPosts)
	router.GET("/profile/:username/", handlers.Profile)
	router.GET("/posts/:id/", handlers.PostDetail)

	// Pages that require a logged-in user
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", handlers.PostCreateForm)
	authRouter.POST("/create/", handlers.PostCreate)
	authRouter.GET("/posts/:id/edit/", handlers.PostEditForm)
	authRouter.POST("/posts/:id/edit/", handlers.PostEdit)
	authRouter.POST("/posts/:id/comment/", handlers.AddComment)
	authRouter.GET("/follow/", handlers.FollowIndex)
	authRouter.GET("/profile/:username/follow/", handlers.ProfileFollow)
	authRouter.GET("/profile/:username/unfollow/", handlers.ProfileUnfollow)

	// Accounts
	router.GET("/auth/signup/", handlers.SignupForm)
	router.POST("/auth/signup/", handlers.Signup)
	router.GET("/auth/login/", handlers.LoginForm)
	router.POST("/auth/login/", handlers.Login)
	router.GET("/auth/logout/", handlers.Logout)

	// Static pages
	router.GET("/about/author/", handlers.AboutAuthor)
	router.GET("/about/tech/", handlers.AboutTech)

	// Uploaded media
	media := router.Group("/media", (&utils.CacheRouter{CacheTime: mediaCacheTime, Public: true}).Handler())
	media.GET("/*filepath", handlers.MediaServe)

	return router
}

func main() {
	db.Init()
	models.Init()
	storage.Init()
	pagecache.Init()

	router := setupRouter()

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
