package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"topreceit/backend/internal/auth"
	"topreceit/backend/internal/config"
	"topreceit/backend/internal/database"
	"topreceit/backend/internal/handler"
	"topreceit/backend/internal/logger"
	"topreceit/backend/internal/notification"
	"topreceit/backend/internal/service"
	"topreceit/backend/internal/storage"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "topreceit/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           TopReceit API
// @version         1.0
// @description     Recipe sharing backend: recipes, ingredients, social graph and shopping lists.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	defer logger.Sync()

	ctx := context.Background()

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)
	if err := database.SeedIngredients(database.DB); err != nil {
		log.Fatalf("Failed to seed ingredient catalog: %v", err)
	}

	notifier, err := notification.NewFirebaseNotifier(ctx, config.AppConfig.FirebaseCredentialsFile)
	if err != nil {
		log.Fatalf("Failed to initialize push notifications: %v", err)
	}

	imageStore, err := storage.NewImageStore(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	// Services
	userService := service.NewUserService(database.DB)
	recipeService := service.NewRecipeService(database.DB)
	ingredientService := service.NewIngredientService(database.DB)
	recipeIngredientService := service.NewRecipeIngredientService(database.DB)
	stepsService := service.NewStepsService(database.DB)
	followService := service.NewFollowService(database.DB)
	likeService := service.NewLikeService(database.DB, notifier)
	favoriteService := service.NewFavoriteService(database.DB, notifier)
	shoppingListService := service.NewShoppingListService(database.DB)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	ingredientHandler := handler.NewIngredientHandler(ingredientService)
	recipeIngredientHandler := handler.NewRecipeIngredientHandler(recipeIngredientService)
	stepsHandler := handler.NewStepsHandler(stepsService)
	followHandler := handler.NewFollowHandler(followService)
	likeHandler := handler.NewLikeHandler(likeService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	shoppingListHandler := handler.NewShoppingListHandler(shoppingListService)
	uploadHandler := handler.NewUploadHandler(imageStore)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// User routes; signup and login stay public, the rest is protected.
	userRoutes := router.Group("/users")
	{
		userRoutes.POST("", userHandler.CreateUser)
		userRoutes.POST("/login/:id", userHandler.Login)

		protected := userRoutes.Group("")
		protected.Use(auth.AuthMiddleware())
		{
			protected.GET("", userHandler.GetAllUsers)
			protected.GET("/:id", userHandler.GetUserByID)
			protected.GET("/:id/profile", userHandler.GetUserProfile)
			protected.PUT("/:id", userHandler.UpdateUser)
			protected.PUT("/:id/token", userHandler.UpdateNotificationToken)
			protected.DELETE("/:id", userHandler.RemoveUser)
		}
	}

	recipeRoutes := router.Group("/recipe")
	{
		// The public feeds are browsable without a token; a valid one
		// still identifies the caller for client-side personalization.
		publicFeed := recipeRoutes.Group("/public")
		publicFeed.Use(auth.OptionalAuthMiddleware())
		{
			publicFeed.GET("", recipeHandler.GetPublicRecipes)
			publicFeed.GET("/filtered", recipeHandler.GetFilteredPublicRecipes)
			publicFeed.GET("/following/:userId", recipeHandler.GetPublicRecipesByFollowing)
		}

		protected := recipeRoutes.Group("")
		protected.Use(auth.AuthMiddleware())
		{
			protected.POST("", recipeHandler.CreateRecipe)
			protected.GET("", recipeHandler.GetAllRecipes)
			protected.GET("/search", recipeHandler.SearchRecipes)
			protected.GET("/user/:userId", recipeHandler.GetRecipesByUser)
			protected.GET("/user/:userId/public", recipeHandler.GetUserPublicRecipes)
			protected.GET("/:id", recipeHandler.GetRecipeByID)
			protected.PUT("/:id", recipeHandler.UpdateRecipe)
			protected.DELETE("/:id", recipeHandler.DeleteRecipe)
		}
	}

	ingredientRoutes := router.Group("/ingredient")
	ingredientRoutes.Use(auth.AuthMiddleware())
	{
		ingredientRoutes.GET("", ingredientHandler.GetIngredients)
		ingredientRoutes.POST("", ingredientHandler.CreateIngredient)
		// Deleting from the shared catalog is admin-only.
		ingredientRoutes.DELETE("/:id", auth.AdminMiddleware(database.DB), ingredientHandler.DeleteIngredient)
	}

	recipeIngredientRoutes := router.Group("/recipe-ingredients")
	recipeIngredientRoutes.Use(auth.AuthMiddleware())
	{
		recipeIngredientRoutes.POST("", recipeIngredientHandler.CreateRecipeIngredient)
		recipeIngredientRoutes.GET("/recipe/:recipeId", recipeIngredientHandler.GetIngredientsForRecipe)
		recipeIngredientRoutes.GET("/:id", recipeIngredientHandler.GetRecipeIngredient)
		recipeIngredientRoutes.PUT("/:id", recipeIngredientHandler.UpdateRecipeIngredient)
		recipeIngredientRoutes.DELETE("/:id", recipeIngredientHandler.DeleteRecipeIngredient)
	}

	stepRoutes := router.Group("/steps")
	stepRoutes.Use(auth.AuthMiddleware())
	{
		stepRoutes.POST("/:recipeId", stepsHandler.CreateStep)
		stepRoutes.GET("/:recipeId", stepsHandler.GetSteps)
		stepRoutes.PUT("/:recipeId/:stepId", stepsHandler.UpdateStep)
		stepRoutes.DELETE("/:recipeId/:stepId", stepsHandler.DeleteStep)
		stepRoutes.DELETE("/step/:stepId", stepsHandler.DeleteStepByID)
	}

	followRoutes := router.Group("/follows")
	followRoutes.Use(auth.AuthMiddleware())
	{
		followRoutes.POST("/:followerId/follow/:followedId", followHandler.FollowUser)
		followRoutes.DELETE("/:followerId/unfollow/:followedId", followHandler.UnfollowUser)
		followRoutes.GET("/:userId/following", followHandler.GetFollowing)
		followRoutes.GET("/:userId/followers", followHandler.GetFollowers)
	}

	likeRoutes := router.Group("/likes")
	likeRoutes.Use(auth.AuthMiddleware())
	{
		likeRoutes.POST("", likeHandler.CreateLike)
		likeRoutes.DELETE("", likeHandler.RemoveLike)
		likeRoutes.GET("/:recipeId", likeHandler.GetLikeCount)
		likeRoutes.GET("/:recipeId/users", likeHandler.GetLikeUsers)
	}

	favoriteRoutes := router.Group("/favorites")
	favoriteRoutes.Use(auth.AuthMiddleware())
	{
		favoriteRoutes.POST("", favoriteHandler.AddFavorite)
		favoriteRoutes.DELETE("", favoriteHandler.RemoveFavorite)
		favoriteRoutes.GET("/:userId", favoriteHandler.GetFavoritesByUser)
	}

	shoppingListRoutes := router.Group("/shopping-lists")
	shoppingListRoutes.Use(auth.AuthMiddleware())
	{
		shoppingListRoutes.GET("/get-shopping-list/:userId", shoppingListHandler.GetShoppingList)
		shoppingListRoutes.POST("/add-recipe-ingredients/:userId/:recipeId", shoppingListHandler.AddRecipeIngredients)
		shoppingListRoutes.DELETE("/clear-shopping-list/:userId", shoppingListHandler.ClearShoppingList)
		shoppingListRoutes.DELETE("/remove-item/:userId/:itemId", shoppingListHandler.RemoveItem)
		shoppingListRoutes.PATCH("/toggle-item-purchased/:userId/:itemId", shoppingListHandler.ToggleItemPurchased)
	}

	uploadRoutes := router.Group("/upload")
	uploadRoutes.Use(auth.AuthMiddleware())
	{
		uploadRoutes.POST("", uploadHandler.UploadImage)
	}

	addr := ":" + config.AppConfig.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:" + config.AppConfig.Port + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}
