package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dbm "tripweave/internal/models/db_models"
	resp "tripweave/internal/models/response_models"
	"tripweave/pkg/utils"
)

type CreateTripInput struct {
	Title        string
	StartDate    time.Time
	Destinations []string
	Legs         datatypes.JSON
}

type TripRepository interface {
	// ReplaceMaterializedItinerary wipes any previously materialized days
	// and items for the trip and writes the given itinerary in full,
	// creating the trip row when tripID is nil or unknown.
	ReplaceMaterializedItinerary(ctx context.Context,
		tripID *uuid.UUID,
		itinerary *resp.ItineraryResponse,
		createIn *CreateTripInput) (uuid.UUID, error)

	GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error)
	ListTrips(ctx context.Context, page int, pageSize int) ([]dbm.Trip, error)
	DeleteTrip(ctx context.Context, tripId string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) ReplaceMaterializedItinerary(
	ctx context.Context,
	tripID *uuid.UUID,
	itinerary *resp.ItineraryResponse,
	createIn *CreateTripInput,
) (uuid.UUID, error) {

	var outID uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t dbm.Trip
		needCreate := false

		switch {
		case tripID == nil || *tripID == uuid.Nil:
			needCreate = true
		default:
			if err := tx.First(&t, "id = ?", *tripID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					needCreate = true
				} else {
					return err
				}
			}
		}

		if needCreate {
			if createIn == nil {
				return errors.New("createIn is required to create a new trip")
			}
			var endUnix *int64
			if itinerary.TotalDays > 0 {
				e := createIn.StartDate.AddDate(0, 0, itinerary.TotalDays-1).Unix()
				endUnix = &e
			}
			t = dbm.Trip{
				Title:        createIn.Title,
				Destinations: createIn.Destinations,
				StartDate:    createIn.StartDate.Unix(),
				EndDate:      endUnix,
				Legs:         createIn.Legs,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}

		outID = t.ID

		updates := map[string]interface{}{
			"total_days":            itinerary.TotalDays,
			"total_experiences":     itinerary.Summary.TotalExperiences,
			"total_transit_minutes": itinerary.Summary.TotalTransitMinutes,
		}
		if err := tx.Model(&dbm.Trip{}).Where("id = ?", t.ID).Updates(updates).Error; err != nil {
			return err
		}

		// Wipe previous materialized data.
		subDayIDs := tx.Model(&dbm.TripDay{}).
			Select("id").
			Where("trip_id = ?", t.ID)

		if err := tx.Where("trip_day_id IN (?)", subDayIDs).
			Delete(&dbm.TripItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", t.ID).
			Delete(&dbm.TripDay{}).Error; err != nil {
			return err
		}

		for _, d := range itinerary.Days {
			date := utils.ParseDate(d.Date)

			td := dbm.TripDay{
				TripID:       t.ID,
				Date:         date,
				DayNumber:    d.DayNumber,
				LegRef:       d.LegID,
				IsTransition: d.IsTransition,
				FromLegRef:   d.FromLegID,
				ToLegRef:     d.ToLegID,
				Note:         d.Note,
			}
			if err := tx.Create(&td).Error; err != nil {
				return err
			}

			items := make([]dbm.TripItem, 0, len(d.Items))
			for pos, it := range d.Items {
				items = append(items, dbm.TripItem{
					TripDayID:       td.ID,
					ItemKey:         it.ID,
					Kind:            it.Kind,
					Title:           it.Title,
					StartTime:       it.StartTime,
					EndTime:         it.EndTime,
					DurationMinutes: it.DurationMinutes,
					Mode:            it.Mode,
					DistanceKm:      it.DistanceKm,
					FlightNumber:    it.FlightNumber,
					Location:        it.Location,
					Position:        pos,
				})
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})

	return outID, err
}

func (r *tripRepository) GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripId).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_days.day_number ASC")
		}).
		Preload("Days.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_items.position ASC")
		}).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) ListTrips(ctx context.Context, page int, pageSize int) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error

	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepository) DeleteTrip(ctx context.Context, tripId string) error {
	sub := r.db.WithContext(ctx).
		Model(&dbm.TripDay{}).
		Select("id").
		Where("trip_id = ?", tripId)

	if err := r.db.WithContext(ctx).
		Where("trip_day_id IN (?)", sub).
		Delete(&dbm.TripItem{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Delete(&dbm.TripDay{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("id = ?", tripId).
		Delete(&dbm.Trip{}).Error
}
