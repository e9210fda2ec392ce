package importer

// Tables lists the import targets in dependency order: referenced tables
// first, so foreign keys resolve when batches are loaded together.
var Tables = []Table{
	{
		Name: "plans",
		File: "plans.csv",
		Columns: []Column{
			{Name: "name", Kind: KindText},
			{Name: "monthly_price", Kind: KindFloat},
			{Name: "duration_months", Kind: KindInt},
		},
		Key: []string{"name", "monthly_price", "duration_months"},
	},
	{
		Name: "instructors",
		File: "instructors.csv",
		Columns: []Column{
			{Name: "name", Kind: KindText},
			{Name: "specialty", Kind: KindText},
		},
		Key: []string{"name", "specialty"},
	},
	{
		Name: "exercises",
		File: "exercises.csv",
		Columns: []Column{
			{Name: "name", Kind: KindText},
			{Name: "muscle_group", Kind: KindText},
		},
		Key: []string{"name", "muscle_group"},
	},
	{
		Name: "clients",
		File: "clients.csv",
		Columns: []Column{
			{Name: "name", Kind: KindText},
			{Name: "age", Kind: KindInt},
			{Name: "sex", Kind: KindText},
			{Name: "email", Kind: KindText},
			{Name: "phone", Kind: KindText},
			{Name: "plan_id", Kind: KindInt},
			{Name: "instructor_id", Kind: KindInt},
		},
		Key: []string{"email"},
	},
	{
		Name: "workouts",
		File: "workouts.csv",
		Columns: []Column{
			{Name: "client_id", Kind: KindInt},
			{Name: "instructor_id", Kind: KindInt},
			{Name: "start_date", Kind: KindDate},
			{Name: "end_date", Kind: KindDate},
			{Name: "plan_id", Kind: KindInt},
		},
		Key: []string{"client_id", "instructor_id", "start_date", "end_date", "plan_id"},
	},
	{
		Name: "workout_exercises",
		File: "workout_exercises.csv",
		Columns: []Column{
			{Name: "workout_id", Kind: KindInt},
			{Name: "exercise_id", Kind: KindInt},
			{Name: "sets", Kind: KindInt},
			{Name: "reps", Kind: KindInt},
		},
		Key: []string{"workout_id", "exercise_id", "sets", "reps"},
	},
	{
		Name: "payments",
		File: "payments.csv",
		Columns: []Column{
			{Name: "client_id", Kind: KindInt},
			{Name: "paid_on", Kind: KindDate},
			{Name: "amount", Kind: KindFloat},
			{Name: "plan_id", Kind: KindInt},
		},
		Key: []string{"client_id", "paid_on", "amount", "plan_id"},
	},
}
