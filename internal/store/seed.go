package store

import "planboard/internal/model"

// SampleBoard is the stock seed payload. It lives here, not in the engine:
// the board store is constructed from whatever payload the caller provides.
func SampleBoard() *Board {
	return &Board{
		Collections: []Collection{
			{
				ID: model.CollectionAvailable,
				Cards: []model.Card{
					{ID: "card-1", Title: "Frontend Task", Description: "Complete the project setup", Group: "Development"},
					{ID: "card-2", Title: "UI Design", Description: "Design the user interface", Group: "Design"},
					{ID: "card-3", Title: "Backend Task", Description: "Implement core features", Group: "Development"},
					{ID: "card-4", Title: "Documentation", Description: "Write API documentation", Group: "Documentation"},
					{ID: "card-5", Title: "Testing", Description: "Perform unit testing", Group: "QA"},
					{ID: "card-6", Title: "Database Design", Description: "Design database schema", Group: "Development"},
					{ID: "card-7", Title: "UX Research", Description: "Conduct user research", Group: "Design"},
					{ID: "card-8", Title: "Security Audit", Description: "Perform security checks", Group: "Security"},
				},
			},
			{ID: model.CollectionEvents},
		},
		Users: []model.User{
			{ID: "user-1", Name: "John Doe", Status: model.UserStatusOnline, Group: "Development"},
			{ID: "user-2", Name: "Jane Smith", Status: model.UserStatusOffline, Group: "Design"},
			{ID: "user-3", Name: "Bob Johnson", Status: model.UserStatusOnline, Group: "Development"},
			{ID: "user-4", Name: "Alice Williams", Status: model.UserStatusOnline, Group: "QA"},
			{ID: "user-5", Name: "Charlie Brown", Status: model.UserStatusOffline, Group: "Documentation"},
			{ID: "user-6", Name: "Diana Prince", Status: model.UserStatusOnline, Group: "Design"},
			{ID: "user-7", Name: "Edward Stone", Status: model.UserStatusOnline, Group: "Development"},
			{ID: "user-8", Name: "Fiona Apple", Status: model.UserStatusOffline, Group: "Research"},
			{ID: "user-9", Name: "George Miller", Status: model.UserStatusOnline, Group: "Security"},
			{ID: "user-10", Name: "Helen Carter", Status: model.UserStatusOnline, Group: "Development"},
		},
	}
}
