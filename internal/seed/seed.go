// Package seed loads the demo data set: an administrator account and one
// hotel with two priced room types and a holiday surcharge.
package seed

import (
	"context"
	"fmt"

	"hoteladmin/infras/otel"
	authDto "hoteladmin/internal/domains/auth/model/dto"
	hotelModel "hoteladmin/internal/domains/hotel/model"
	hotelDto "hoteladmin/internal/domains/hotel/model/dto"
	hotelRepo "hoteladmin/internal/domains/hotel/repository"
	rtDto "hoteladmin/internal/domains/roomtype/model/dto"
	rtRepo "hoteladmin/internal/domains/roomtype/repository"
	timelineService "hoteladmin/internal/domains/timeline/service"
	userModel "hoteladmin/internal/domains/user/model"
	userRepo "hoteladmin/internal/domains/user/repository"
	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/password"
	"hoteladmin/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	seedUser = "seeder"

	AdminUsername = "admin"
	AdminPassword = "admin123"

	HotelName     = "Grand Plaza"
	HotelLocation = "New York"

	holidayReason = "Holiday Season Peak"
)

var roomTypes = []struct {
	name     string
	baseRate int64
}{
	{name: "Deluxe Room", baseRate: 150},
	{name: "Executive Suite", baseRate: 300},
}

type Seeder struct {
	users     userRepo.User
	hotels    hotelRepo.Hotel
	roomTypes rtRepo.RoomType
	timeline  timelineService.Timeline
	otel      otel.Otel
}

func New(
	users userRepo.User,
	hotels hotelRepo.Hotel,
	roomTypes rtRepo.RoomType,
	timeline timelineService.Timeline,
	otel otel.Otel,
) *Seeder {
	return &Seeder{
		users:     users,
		hotels:    hotels,
		roomTypes: roomTypes,
		timeline:  timeline,
		otel:      otel,
	}
}

// Run is safe to repeat: the admin account and the hotel are only created
// when no record with the same username or hotel name exists yet.
func (s *Seeder) Run(ctx context.Context) (err error) {
	ctx = context.WithValue(ctx, constant.ContextKeyUsername, seedUser)

	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.seedAdmin(ctx); err != nil {
		return err
	}

	return s.seedHotel(ctx)
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	exists, err := s.users.Exist(ctx, shared.FilterByID(AdminUsername, userModel.FieldUsername, userModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	if exists {
		log.Info().Str("username", AdminUsername).Msg("admin user already seeded")

		return nil
	}

	hashed, err := password.Hash(AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	req := authDto.RegisterRequest{Username: AdminUsername, Password: AdminPassword}
	user := req.ToUserModel(seedUser, hashed)
	user.Level = constant.RoleSuperAdmin

	if err := s.users.Insert(ctx, user); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Info().Str("username", AdminUsername).Msg("admin user created")

	return nil
}

func (s *Seeder) seedHotel(ctx context.Context) error {
	exists, err := s.hotels.Exist(ctx, shared.FilterByID(HotelName, hotelModel.FieldName, hotelModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to check hotel: %w", err)
	}

	if exists {
		log.Info().Str("hotel", HotelName).Msg("hotel already seeded")

		return nil
	}

	hotelReq := hotelDto.CreateHotelRequest{Name: HotelName, Location: HotelLocation}
	hotel := hotelReq.ToModel(seedUser)

	if err := s.hotels.Insert(ctx, hotel); err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}

	for i, rt := range roomTypes {
		baseRate := decimal.NewFromInt(rt.baseRate)
		req := rtDto.CreateRoomTypeRequest{HotelID: hotel.ID, Name: rt.name, BaseRate: &baseRate}
		roomType := req.ToModel(seedUser)

		if err := s.roomTypes.Insert(ctx, roomType); err != nil {
			return fmt.Errorf("failed to create room type %q: %w", rt.name, err)
		}

		if i > 0 {
			continue
		}

		yesterday := timezone.Today().AddDays(-1)

		if _, err := s.timeline.AddAdjustment(ctx, roomType.ID, decimal.NewFromInt(20), yesterday, holidayReason); err != nil {
			return fmt.Errorf("failed to create rate adjustment: %w", err)
		}
	}

	log.Info().Str("hotel", HotelName).Int("room_types", len(roomTypes)).Msg("hotel seeded")

	return nil
}
