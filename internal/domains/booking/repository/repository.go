package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"royalpalace/infras/otel"
	"royalpalace/infras/postgres"
	"royalpalace/internal/domains/booking/model"
	roomModel "royalpalace/internal/domains/room/model"
	"royalpalace/shared"
	"royalpalace/shared/constant"
	gDto "royalpalace/shared/dto"
	gRepo "royalpalace/shared/repository"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CreateWithRoomStatus(ctx context.Context, booking model.Booking, roomStatus string) error
	UpdateStatusWithRoom(ctx context.Context, fields map[string]any, bookingID, roomID, roomStatus string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	roomRepo gRepo.Repository[roomModel.Room]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		roomRepo:   gRepo.NewRepository[roomModel.Room](roomModel.EntityName, roomModel.TableName, roomModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateWithRoomStatus inserts the booking and moves its room to the given
// status inside one transaction, so a confirmed booking can never exist
// against a room that still reads AVAILABLE.
func (repo *repositoryImpl) CreateWithRoomStatus(ctx context.Context, booking model.Booking, roomStatus string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CreateWithRoomStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("[CreateWithRoomStatus] failed to begin transaction")
		return
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		repo.rollback(tx, err)
		return
	}

	roomFields := map[string]any{
		roomModel.FieldStatus: roomStatus,
	}
	if err = repo.roomRepo.UpdateTx(ctx, tx, roomFields, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		repo.rollback(tx, err)
		return
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("[CreateWithRoomStatus] failed to commit transaction")
	}

	return
}

// UpdateStatusWithRoom applies the given booking fields and the room status
// change atomically.
func (repo *repositoryImpl) UpdateStatusWithRoom(ctx context.Context, fields map[string]any, bookingID, roomID, roomStatus string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateStatusWithRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("[UpdateStatusWithRoom] failed to begin transaction")
		return
	}

	if err = repo.UpdateTx(ctx, tx, fields, shared.FilterByID(bookingID, model.FieldID, model.TableName)); err != nil {
		repo.rollback(tx, err)
		return
	}

	roomFields := map[string]any{
		roomModel.FieldStatus: roomStatus,
	}
	if err = repo.roomRepo.UpdateTx(ctx, tx, roomFields, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		repo.rollback(tx, err)
		return
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("[UpdateStatusWithRoom] failed to commit transaction")
	}

	return
}

func (repo *repositoryImpl) rollback(tx interface{ Rollback() error }, cause error) {
	if rbErr := tx.Rollback(); rbErr != nil {
		log.Error().Err(rbErr).AnErr("cause", cause).Msg("[rollback] failed to roll back transaction")
	}
}
