package repository

import (
	"gorm.io/gorm"

	"tourista/internal/domain"
)

// reserveRooms claims rooms on a hotel inside the caller's transaction. The
// capacity check and the decrement are a single conditional UPDATE, so two
// concurrent reservers of the same hotel can never both take the last room:
// whichever statement runs second sees the already-decremented counter and
// affects zero rows.
func reserveRooms(tx *gorm.DB, hotelID int64, rooms int) error {
	res := tx.Model(&hotelModel{}).
		Where("id = ? AND available_rooms >= ?", hotelID, rooms).
		UpdateColumn("available_rooms", gorm.Expr("available_rooms - ?", rooms))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// Zero rows: either the hotel is gone or it is out of capacity.
	var count int64
	if err := tx.Model(&hotelModel{}).Where("id = ?", hotelID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrInsufficientCapacity
}

// releaseRooms gives rooms back on cancellation. It must run exactly once per
// canceled booking; the guarded status flip in BookingRepository.Cancel is
// what enforces that.
func releaseRooms(tx *gorm.DB, hotelID int64, rooms int) error {
	res := tx.Model(&hotelModel{}).
		Where("id = ?", hotelID).
		UpdateColumn("available_rooms", gorm.Expr("available_rooms + ?", rooms))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
