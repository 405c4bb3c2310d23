package domain

type User struct {
	ID        string
	Username  string
	Avatar    string
	Bio       string
	Followers int
	Following int
	Posts     int
}
