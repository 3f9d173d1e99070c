package model

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&User{},
		&Team{},
		&Project{},
		&Iteration{},
		&Story{},
		&Task{},
		&TaskEvent{},
		&PracticeTemplate{},
		&Practice{},
		&PracticeAllocation{},
		&HourEntry{},
		&ActivityType{},
		&WorkType{},
	}
}
