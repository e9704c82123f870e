//go:generate mockgen -source=../payment_processor.go  -destination=./mock_payment_processor.go  -package=mocks
//go:generate mockgen -source=../seat_reservation.go   -destination=./mock_seat_reservation.go   -package=mocks
//go:generate mockgen -source=../purchase_validator.go -destination=./mock_purchase_validator.go -package=mocks
//go:generate mockgen -source=../ticket_purchaser.go   -destination=./mock_ticket_purchaser.go   -package=mocks
//go:generate mockgen -source=../command_publisher.go  -destination=./mock_command_publisher.go  -package=mocks
//go:generate mockgen -source=../logger.go             -destination=./mock_logger.go             -package=mocks
//go:generate mockgen -source=../message_consumer.go   -destination=./mock_message_consumer.go   -package=mocks

package mocks
