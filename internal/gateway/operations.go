package gateway

// Operation names of the remote command interface. The backend resolves
// these by name; nothing here knows how it serves them.
const (
	OpGetAllCourses  = "get_all_courses"
	OpGetLessonByID  = "get_lesson_by_id"
	OpCreateCourse   = "create_course"
	OpCreateModule   = "create_module"
	OpCreateLesson   = "create_lesson"
	OpUpdateCourse   = "update_course"
	OpUpdateModule   = "update_module"
	OpUpdateLesson   = "update_lesson"
	OpDeleteCourse   = "delete_course"
	OpDeleteModule   = "delete_module"
	OpDeleteLesson   = "delete_lesson"
	OpSearchLessons  = "search_lessons"
	OpValidateCode   = "validate_code"
	OpGetProgress    = "get_user_progress"
	OpUpdateProgress = "update_lesson_progress"
	OpGetProfile     = "get_user_profile"
	OpGetStatistics  = "get_user_statistics"
	OpUpdateAvatar   = "update_user_avatar"
	OpUpdateUsername = "update_user_username"
	OpAvailableAch   = "get_available_achievements"
	OpUserAch        = "get_user_achievements"
	OpCheckUnlockAch = "check_and_unlock_achievements"
	OpLoginUser      = "login_user"
	OpRegisterUser   = "register_user"
	OpCheckIsAdmin   = "check_is_admin"
)
