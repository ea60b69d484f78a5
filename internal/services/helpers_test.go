package services

import (
	"regexp"
	"testing"

	"busbook/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockGateway(t *testing.T) (db.Gateway, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return db.New(conn), mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

var (
	selectSeatByBus  = regexp.QuoteMeta("SELECT * FROM `seats` WHERE `bus_id` = ? ORDER BY `bus_id` ASC LIMIT ?")
	selectBusByID    = regexp.QuoteMeta("SELECT * FROM `buses` WHERE `bus_id` = ? ORDER BY `bus_id` ASC LIMIT ?")
	selectBusRoutes  = regexp.QuoteMeta("SELECT * FROM `routes` WHERE `bus_id` = ? ORDER BY `stop_time` ASC, `route_id` ASC")
	insertOccupancy  = regexp.QuoteMeta("INSERT INTO `occupancy` (`bus_id`, `user_name`) VALUES (?, ?)")
	updateSeatCount  = regexp.QuoteMeta("UPDATE `seats` SET `available_seats` = ? WHERE `bus_id` = ?")
	insertSeat       = regexp.QuoteMeta("INSERT INTO `seats` (`available_seats`, `bus_id`) VALUES (?, ?)")
	updateBusFields  = regexp.QuoteMeta("UPDATE `buses` SET `bus_number` = ?, `total_seats` = ? WHERE `bus_id` = ?")
	updateRouteByID  = regexp.QuoteMeta("UPDATE `routes` SET `stop_name` = ?, `stop_time` = ? WHERE `route_id` = ?")
	insertRoute      = regexp.QuoteMeta("INSERT INTO `routes` (`bus_id`, `stop_name`, `stop_time`) VALUES (?, ?, ?)")
	deleteRouteByID  = regexp.QuoteMeta("DELETE FROM `routes` WHERE `route_id` = ?")
	selectAdminByKey = regexp.QuoteMeta("SELECT * FROM `admins` WHERE `username` = ? ORDER BY `id` ASC LIMIT ?")
)

func busRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"bus_id", "bus_number", "total_seats"})
}

func seatRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"bus_id", "available_seats"})
}

func routeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"route_id", "bus_id", "stop_name", "stop_time"})
}
