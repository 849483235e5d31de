package api

// Request and response shapes mirror the backend's schemas verbatim.
// Timestamps are kept as the ISO strings the backend emits.

// tokenResponse is returned by /api/auth/login, /register and /refresh.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// User is the authenticated user's profile as returned by /api/auth/me.
type User struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	CreatedAt string  `json:"created_at"`
	LastLogin *string `json:"last_login"`
}

// Product is a store listing: local price/stock plus catalog metadata.
type Product struct {
	ID          int64   `json:"id"`
	RawgID      int64   `json:"rawg_id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ProductList is a paginated product listing.
type ProductList struct {
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Results  []Product `json:"results"`
}

// CreateProductRequest creates a store listing from a catalog game (admin).
type CreateProductRequest struct {
	RawgID int64   `json:"rawg_id"`
	Price  float64 `json:"price"`
	Stock  int     `json:"stock"`
}

// UpdateProductRequest partially updates a listing (admin). Nil fields are
// left unchanged.
type UpdateProductRequest struct {
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// GenreShort identifies a game genre inside a game record.
type GenreShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GameSummary is the condensed game record used in catalog listings.
type GameSummary struct {
	ID              int64        `json:"id"`
	Slug            string       `json:"slug"`
	Name            string       `json:"name"`
	Released        *string      `json:"released"`
	BackgroundImage *string      `json:"background_image"`
	Rating          *float64     `json:"rating"`
	Metacritic      *int         `json:"metacritic"`
	Genres          []GenreShort `json:"genres"`
}

// GameDetail is the full game record for product detail pages.
type GameDetail struct {
	GameSummary
	Description    *string `json:"description"`
	DescriptionRaw *string `json:"description_raw"`
	Website        *string `json:"website"`
}

// GameList is the catalog search result page.
type GameList struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []GameSummary `json:"results"`
}

// Genre is a full genre record from the catalog.
type Genre struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	GamesCount      int     `json:"games_count"`
	ImageBackground *string `json:"image_background"`
}

// GenreList wraps the catalog genres response.
type GenreList struct {
	Count   int     `json:"count"`
	Results []Genre `json:"results"`
}

// Platform is a gaming platform record from the catalog.
type Platform struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	GamesCount int    `json:"games_count"`
}

// PlatformList wraps the catalog platforms response.
type PlatformList struct {
	Count   int        `json:"count"`
	Results []Platform `json:"results"`
}

// CartItem is one line of the cart, joined with game metadata.
type CartItem struct {
	ID        int64   `json:"id"`
	GameID    int64   `json:"game_id"`
	Quantity  int     `json:"quantity"`
	GameTitle string  `json:"game_title"`
	GameImage *string `json:"game_image"`
	GamePrice float64 `json:"game_price"`
	Subtotal  float64 `json:"subtotal"`
	InStock   bool    `json:"in_stock"`
}

// Cart is the user's full shopping cart.
type Cart struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

type addCartItemRequest struct {
	GameID   int64 `json:"game_id"`
	Quantity int   `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// OrderItem is a purchased line with prices snapshotted at checkout.
type OrderItem struct {
	ID        int64   `json:"id"`
	GameID    int64   `json:"game_id"`
	GameTitle string  `json:"game_title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// Order is a completed or in-progress purchase.
type Order struct {
	ID                    int64       `json:"id"`
	UserID                int64       `json:"user_id"`
	Subtotal              float64     `json:"subtotal"`
	Tax                   float64     `json:"tax"`
	Total                 float64     `json:"total"`
	Status                string      `json:"status"`
	StripePaymentIntentID *string     `json:"stripe_payment_intent_id"`
	Items                 []OrderItem `json:"items"`
	CreatedAt             string      `json:"created_at"`
	CompletedAt           *string     `json:"completed_at"`
}

// OrderList is a paginated order listing.
type OrderList struct {
	Total    int     `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	Results  []Order `json:"results"`
}

type createOrderRequest struct {
	StripePaymentIntentID *string `json:"stripe_payment_intent_id,omitempty"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Review is a product review joined with the author's name.
type Review struct {
	ID        int64   `json:"id"`
	GameID    int64   `json:"game_id"`
	UserID    int64   `json:"user_id"`
	UserName  string  `json:"user_name"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ReviewList is a paginated review listing with the game's average rating.
type ReviewList struct {
	Total         int      `json:"total"`
	Page          int      `json:"page"`
	PageSize      int      `json:"page_size"`
	AverageRating float64  `json:"average_rating"`
	Results       []Review `json:"results"`
}

type createReviewRequest struct {
	GameID  int64   `json:"game_id"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

// UpdateReviewRequest partially updates a review. Nil fields are left
// unchanged.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}
