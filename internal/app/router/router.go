package router

import (
	"github.com/gin-gonic/gin"

	authhandler "stock_analysis/internal/feature/auth/transport/handler"
	favoriteshandler "stock_analysis/internal/feature/favorites/transport/handler"
	stockhandler "stock_analysis/internal/feature/stocks/transport/handler"
	healthhandler "stock_analysis/internal/platform/http/handler"
	jwtmw "stock_analysis/internal/platform/jwt"
)

// NewRouter はアプリケーションの全ルートを組み立てたGinエンジンを返します。
func NewRouter(auth *authhandler.AuthHandler, stocks *stockhandler.StockHandler,
	favorites *favoriteshandler.FavoritesHandler, denylist jwtmw.Denylist) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", healthhandler.Health)
	// 新規ユーザー登録
	r.POST("/signup", auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)

	// 認証必須のルート
	protected := r.Group("/")
	// リクエストヘッダーに有効なJWTが必要になる
	protected.Use(jwtmw.AuthRequired(denylist))
	{
		// ログアウト（トークン失効）
		protected.POST("/logout", auth.Logout)

		// 銘柄照会
		protected.GET("/stocks/top", stocks.Top)
		protected.GET("/stocks/search", stocks.Search)
		protected.GET("/stocks/sector/:sector", stocks.BySector)
		protected.GET("/stocks/:symbol", stocks.GetBySymbol)

		// お気に入り
		protected.GET("/favorites", favorites.List)
		protected.POST("/favorites/:symbol", favorites.Add)
		protected.DELETE("/favorites/:symbol", favorites.Remove)
	}

	return r
}
