// Seeds the bootstrap admin account and the initial room catalog. Safe to
// run repeatedly: existing rows are left alone.
package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"royalpalace/config"
	"royalpalace/infras/otel"
	"royalpalace/infras/postgres"
	roomModel "royalpalace/internal/domains/room/model"
	roomRepository "royalpalace/internal/domains/room/repository"
	roomTypeModel "royalpalace/internal/domains/roomtype/model"
	roomTypeRepository "royalpalace/internal/domains/roomtype/repository"
	userModel "royalpalace/internal/domains/user/model"
	userRepository "royalpalace/internal/domains/user/repository"
	"royalpalace/shared/constant"
	gDto "royalpalace/shared/dto"
	"royalpalace/shared/logger"
	gModel "royalpalace/shared/model"
	"royalpalace/shared/password"
	"royalpalace/shared/timezone"
)

type roomTypeSeed struct {
	Name         string
	Description  string
	SingleRate   float64
	DoubleRate   float64
	MaxOccupancy int
	Amenities    []string
	TotalRooms   int
}

var roomTypeSeeds = []roomTypeSeed{
	{
		Name:         "Executive Suite",
		Description:  "Luxurious suite with separate living area and premium amenities",
		SingleRate:   299.99,
		DoubleRate:   349.99,
		MaxOccupancy: 2,
		Amenities:    []string{"Free WiFi", "Mini Bar", "Room Service", "Air Conditioning", "Flat-screen TV", "Safety Deposit Box"},
		TotalRooms:   5,
	},
	{
		Name:         "Interconnecting Room",
		Description:  "Perfect for families, these rooms can be connected for more space",
		SingleRate:   199.99,
		DoubleRate:   249.99,
		MaxOccupancy: 4,
		Amenities:    []string{"Free WiFi", "Mini Bar", "Air Conditioning", "Flat-screen TV", "Safety Deposit Box"},
		TotalRooms:   8,
	},
	{
		Name:         "Deluxe Room",
		Description:  "Spacious room with modern amenities and comfortable furnishings",
		SingleRate:   149.99,
		DoubleRate:   199.99,
		MaxOccupancy: 2,
		Amenities:    []string{"Free WiFi", "Air Conditioning", "Flat-screen TV", "Tea/Coffee Maker"},
		TotalRooms:   15,
	},
	{
		Name:         "Superdeluxe Room",
		Description:  "Premium room with extra amenities and elegant decor",
		SingleRate:   179.99,
		DoubleRate:   229.99,
		MaxOccupancy: 2,
		Amenities:    []string{"Free WiFi", "Mini Bar", "Air Conditioning", "Flat-screen TV", "Safety Deposit Box", "Premium Toiletries"},
		TotalRooms:   10,
	},
	{
		Name:         "Junior Suite",
		Description:  "Elegant suite with separate living area and premium features",
		SingleRate:   249.99,
		DoubleRate:   299.99,
		MaxOccupancy: 2,
		Amenities:    []string{"Free WiFi", "Mini Bar", "Room Service", "Air Conditioning", "Flat-screen TV", "Safety Deposit Box", "Bathtub"},
		TotalRooms:   7,
	},
}

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx := context.Background()
	otl := otel.New(cfg)
	db := postgres.New(cfg)

	userRepo := userRepository.New(db, otl)
	roomTypeRepo := roomTypeRepository.New(db, otl)
	roomRepo := roomRepository.New(db, otl)

	if err := seedAdmin(ctx, cfg, userRepo); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin user")
	}

	if err := seedCatalog(ctx, roomTypeRepo, roomRepo); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed room catalog")
	}

	log.Info().Msg("Seed completed successfully")
}

func seedAdmin(ctx context.Context, cfg *config.Config, repo userRepository.User) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Warn().Msg("Admin credentials not configured, skipping admin seed")

		return nil
	}

	exists, err := repo.Exist(ctx, filterByField(userModel.FieldEmail, cfg.Admin.Email, userModel.TableName))
	if err != nil {
		return err
	}

	if exists {
		log.Info().Str("email", cfg.Admin.Email).Msg("Admin user already exists")

		return nil
	}

	hashed, err := password.Hash(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := userModel.User{
		ID:       uuid.NewString(),
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: hashed,
		Role:     constant.RoleAdmin,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemActor,
			ModifiedBy: constant.SystemActor,
		},
	}

	if err := repo.Insert(ctx, admin); err != nil {
		return err
	}

	log.Info().Str("email", cfg.Admin.Email).Msg("Admin user created")

	return nil
}

func seedCatalog(ctx context.Context, roomTypeRepo roomTypeRepository.RoomType, roomRepo roomRepository.Room) error {
	for _, seed := range roomTypeSeeds {
		roomTypeID, err := ensureRoomType(ctx, roomTypeRepo, seed)
		if err != nil {
			return err
		}

		if err := ensureRooms(ctx, roomRepo, roomTypeID, seed); err != nil {
			return err
		}
	}

	return nil
}

func ensureRoomType(ctx context.Context, repo roomTypeRepository.RoomType, seed roomTypeSeed) (string, error) {
	filter := filterByField(roomTypeModel.FieldName, seed.Name, roomTypeModel.TableName)

	exists, err := repo.Exist(ctx, filter)
	if err != nil {
		return "", err
	}

	if exists {
		existing, err := repo.Get(ctx, filter)
		if err != nil {
			return "", err
		}

		return existing.ID, nil
	}

	doubleRate := seed.DoubleRate
	roomType := roomTypeModel.RoomType{
		ID:           uuid.NewString(),
		Name:         seed.Name,
		Description:  seed.Description,
		SingleRate:   seed.SingleRate,
		DoubleRate:   &doubleRate,
		MaxOccupancy: seed.MaxOccupancy,
		Amenities:    pq.StringArray(seed.Amenities),
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemActor,
			ModifiedBy: constant.SystemActor,
		},
	}

	if err := repo.Insert(ctx, roomType); err != nil {
		return "", err
	}

	log.Info().Str("name", seed.Name).Msg("Room type created")

	return roomType.ID, nil
}

func ensureRooms(ctx context.Context, repo roomRepository.Room, roomTypeID string, seed roomTypeSeed) error {
	existing, err := repo.Count(ctx, filterByField(roomModel.FieldRoomTypeID, roomTypeID, roomModel.TableName))
	if err != nil {
		return err
	}

	for i := existing + 1; i <= seed.TotalRooms; i++ {
		floor := rand.Intn(5) + 1
		room := roomModel.Room{
			ID:         uuid.NewString(),
			RoomNumber: fmt.Sprintf("%d%02d%c", floor, i, seed.Name[0]),
			Floor:      floor,
			Status:     roomModel.StatusAvailable,
			RoomTypeID: roomTypeID,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  constant.SystemActor,
				ModifiedBy: constant.SystemActor,
			},
		}

		if err := repo.Insert(ctx, room); err != nil {
			return err
		}
	}

	return nil
}

func filterByField(field, value, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    table,
			},
		},
	}
}
