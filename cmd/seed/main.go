package main

import (
	"context"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"recetario/internal/database"
	"recetario/internal/service"
	"recetario/internal/types"
)

type seedRecipe struct {
	title        string
	categories   []string
	ingredients  []string
	instructions string
	fit          bool
}

var seedRecipes = []seedRecipe{
	{
		title:        "Tortilla de papas",
		categories:   []string{"ALMUERZO", "CENA"},
		ingredients:  []string{"Papas", "Huevos", "Cebolla", "Aceite de oliva", "Sal"},
		instructions: "Pelar y cortar las papas en rodajas finas. Freírlas con la cebolla, mezclar con los huevos batidos y cuajar la tortilla de ambos lados.",
		fit:          false,
	},
	{
		title:        "Ensalada César con pollo",
		categories:   []string{"ALMUERZO"},
		ingredients:  []string{"Lechuga", "Pollo", "Queso parmesano", "Pan tostado", "Salsa césar"},
		instructions: "Grillar el pollo y cortarlo en tiras. Mezclar con la lechuga, el queso y los crutones, y aderezar con la salsa.",
		fit:          true,
	},
	{
		title:        "Budín de banana",
		categories:   []string{"MERIENDA", "POSTRE"},
		ingredients:  []string{"Bananas maduras", "Avena", "Huevos", "Miel", "Esencia de vainilla"},
		instructions: "Pisar las bananas y mezclar con el resto de los ingredientes. Hornear a 180 grados durante 40 minutos.",
		fit:          true,
	},
	{
		title:        "Pizza casera",
		categories:   []string{"CENA"},
		ingredients:  []string{"Harina", "Levadura", "Salsa de tomate", "Queso muzzarella", "Orégano"},
		instructions: "Amasar, dejar levar una hora y estirar. Cubrir con salsa y queso, y hornear a fuego fuerte hasta dorar.",
		fit:          false,
	},
	{
		title:        "Avena con frutas",
		categories:   []string{"DESAYUNO"},
		ingredients:  []string{"Avena", "Leche", "Frutillas", "Banana", "Miel"},
		instructions: "Cocinar la avena con la leche a fuego bajo y servir con la fruta cortada y un hilo de miel.",
		fit:          true,
	},
	{
		title:        "Hummus con bastones",
		categories:   []string{"SNACK"},
		ingredients:  []string{"Garbanzos", "Tahini", "Limón", "Ajo", "Zanahoria", "Apio"},
		instructions: "Procesar los garbanzos con tahini, limón y ajo hasta lograr una pasta cremosa. Servir con los bastones de verdura.",
		fit:          true,
	},
}

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seeding never touches the media host
	svc := service.NewRecipeService(db, nil)
	ctx := context.Background()

	for _, r := range seedRecipes {
		fit := r.fit
		created, err := svc.Create(ctx, &types.RecipeCreateRequest{
			Title:        r.title,
			Categories:   r.categories,
			Ingredients:  r.ingredients,
			Instructions: r.instructions,
			Fit:          &fit,
		}, nil)
		if err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", r.title, err)
		}
		log.Printf("Seeded recipe %s (%s)", created.Title, created.ID)
	}

	log.Printf("Seeded %d recipes", len(seedRecipes))
}
