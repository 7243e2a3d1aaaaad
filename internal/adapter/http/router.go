package http

import (
	"net"
	"strconv"
	"time"

	"lodge-portal/internal/adapter/middleware"
	"lodge-portal/internal/infrastructure/metrics"
	"lodge-portal/internal/usecase/account"
	"lodge-portal/internal/usecase/catalog"
	"lodge-portal/internal/usecase/document"
	"lodge-portal/internal/usecase/handoff"
	"lodge-portal/internal/usecase/recruitment"
	"lodge-portal/internal/usecase/servicereq"
	"lodge-portal/internal/usecase/voucher"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	Accounts        *account.Usecase
	Vouchers        *voucher.Usecase
	Recruitments    *recruitment.Usecase
	Catalog         *catalog.Usecase
	Documents       *document.Usecase
	ServiceRequests *servicereq.Usecase
	Handoff         *handoff.Usecase

	Tokens       middleware.TokenParser
	Redis        *redis.Client
	IdempTTL     time.Duration
	Limiter      *middleware.RateLimiter
	Logger       *logrus.Logger
	Checks       map[string]HealthCheck
	CookieSecure bool
	MaxUpload    int64

	// TrustedProxies may set X-Forwarded-For; nobody else can move RealIP.
	TrustedProxies []*net.IPNet
}

func clientIPExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, n := range trusted {
		opts = append(opts, echo.TrustIPRange(n))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.IPExtractor = clientIPExtractor(d.TrustedProxies)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	// room for the multipart envelope around the largest upload
	e.Use(echomw.BodyLimit(strconv.FormatInt(d.MaxUpload/1024+1024, 10) + "K"))
	e.Use(echomw.Secure())
	e.Use(echomw.CORS())
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLogger(d.Logger))

	session := middleware.RequireSession(d.Tokens, d.Accounts)
	idem := middleware.IdempotencyMiddleware(d.Redis, d.IdempTTL)
	limit := d.Limiter.Middleware()

	health := NewHandler(d.Checks)
	authH := NewAuthHandler(d.Accounts, d.CookieSecure)
	voucherH := NewVoucherHandler(d.Vouchers, d.Handoff)
	recruitH := NewRecruitmentHandler(d.Recruitments)
	catalogH := NewCatalogHandler(d.Catalog)
	docH := NewDocumentHandler(d.Documents, d.MaxUpload)
	srH := NewServiceRequestHandler(d.ServiceRequests)
	handoffH := NewHandoffHandler(d.Handoff)

	e.GET("/health", health.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	e.POST("/auth/signup", authH.Signup, limit)
	e.POST("/auth/login", authH.Login, limit)
	e.POST("/auth/logout", authH.Logout)
	e.GET("/auth/me", authH.Me, session)

	e.POST("/vouchers/validate", recruitH.ValidateVoucher, limit)
	e.POST("/vouchers/purchase-request", voucherH.PurchaseRequest, session)

	e.POST("/recruitments", recruitH.Submit, session, idem)
	e.GET("/recruitments", recruitH.ListMine, session)

	e.GET("/products", catalogH.ListProducts)
	e.POST("/orders", catalogH.PlaceOrder, session, idem)
	e.GET("/orders", catalogH.ListMyOrders, session)
	e.GET("/orders/:id", catalogH.GetOrder, session)

	e.GET("/documents", docH.ListMine, session)
	e.GET("/documents/:id/file", docH.Download, session)

	e.POST("/service-requests", srH.Create, session)
	e.GET("/service-requests", srH.ListMine, session)

	e.GET("/handoff/config", handoffH.Get)

	admin := e.Group("/admin", session, middleware.RequireAdmin)
	admin.GET("/check-access", authH.CheckAccess)

	admin.GET("/vouchers", voucherH.List)
	admin.POST("/vouchers", voucherH.Issue)

	admin.GET("/recruitments", recruitH.ListAll)
	admin.PATCH("/recruitments/:id/status", recruitH.UpdateStatus)

	admin.GET("/users", authH.ListUsers)
	admin.GET("/users/export", authH.ExportUsers)
	admin.PATCH("/users/:id/status", authH.UpdateUserStatus)
	admin.DELETE("/users/:id", authH.DeleteUser)

	admin.POST("/products", catalogH.CreateProduct)
	admin.DELETE("/products/:id", catalogH.DeleteProduct)

	admin.GET("/orders", catalogH.ListAllOrders)
	admin.PATCH("/orders/:id/status", catalogH.UpdateOrderStatus)

	admin.GET("/documents", docH.ListAll)
	admin.POST("/documents", docH.Issue)
	admin.DELETE("/documents/:id", docH.Delete)

	admin.GET("/service-requests", srH.List)
	admin.PATCH("/service-requests/:id/status", srH.UpdateStatus)

	admin.PUT("/handoff/config", handoffH.Update)

	return e
}
