package user

import (
	"time"

	"user-dashboard/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleUsers 返回内置的 10 个演示用户（每次返回新切片，调用方可随意持有）
func SampleUsers() []domain.User {
	return []domain.User{
		{ID: 1, FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Phone: "(555) 123-4567",
			City: "New York", State: "NY", Status: domain.StatusActive, JoinDate: day("2023-01-15"), LastLogin: "2024-01-20 10:30 AM"},
		{ID: 2, FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com", Phone: "(555) 234-5678",
			City: "Los Angeles", State: "CA", Status: domain.StatusActive, JoinDate: day("2023-02-20"), LastLogin: "2024-01-19 2:15 PM"},
		{ID: 3, FirstName: "Mike", LastName: "Johnson", Email: "mike.johnson@example.com", Phone: "(555) 345-6789",
			City: "Chicago", State: "IL", Status: domain.StatusInactive, JoinDate: day("2023-03-10"), LastLogin: "2024-01-15 9:45 AM"},
		{ID: 4, FirstName: "Sarah", LastName: "Williams", Email: "sarah.williams@example.com", Phone: "(555) 456-7890",
			City: "Houston", State: "TX", Status: domain.StatusPending, JoinDate: day("2024-01-10"), LastLogin: "2024-01-18 11:20 AM"},
		{ID: 5, FirstName: "David", LastName: "Brown", Email: "david.brown@example.com", Phone: "(555) 567-8901",
			City: "Phoenix", State: "AZ", Status: domain.StatusActive, JoinDate: day("2023-04-05"), LastLogin: "2024-01-20 8:00 AM"},
		{ID: 6, FirstName: "Lisa", LastName: "Davis", Email: "lisa.davis@example.com", Phone: "(555) 678-9012",
			City: "Philadelphia", State: "PA", Status: domain.StatusActive, JoinDate: day("2023-05-12"), LastLogin: "2024-01-19 4:30 PM"},
		{ID: 7, FirstName: "Robert", LastName: "Miller", Email: "robert.miller@example.com", Phone: "(555) 789-0123",
			City: "San Antonio", State: "TX", Status: domain.StatusInactive, JoinDate: day("2023-06-18"), LastLogin: "2024-01-14 1:15 PM"},
		{ID: 8, FirstName: "Emily", LastName: "Wilson", Email: "emily.wilson@example.com", Phone: "(555) 890-1234",
			City: "San Diego", State: "CA", Status: domain.StatusActive, JoinDate: day("2023-07-22"), LastLogin: "2024-01-20 3:45 PM"},
		{ID: 9, FirstName: "Michael", LastName: "Taylor", Email: "michael.taylor@example.com", Phone: "(555) 901-2345",
			City: "Dallas", State: "TX", Status: domain.StatusPending, JoinDate: day("2024-01-05"), LastLogin: "2024-01-17 10:10 AM"},
		{ID: 10, FirstName: "Amanda", LastName: "Anderson", Email: "amanda.anderson@example.com", Phone: "(555) 012-3456",
			City: "San Jose", State: "CA", Status: domain.StatusActive, JoinDate: day("2023-08-30"), LastLogin: "2024-01-20 6:20 PM"},
	}
}
