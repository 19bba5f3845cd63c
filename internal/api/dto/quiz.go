package dto

type GenerateQuizDTO struct {
	Topic        string `json:"topic"`
	NumQuestions int    `json:"numQuestions"`
	Difficulty   string `json:"difficulty"`
}

type QuizQuestionDTO struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

type QuizDTO struct {
	QuizID    string             `json:"quizId"`
	Questions []*QuizQuestionDTO `json:"questions"`
}

type CompleteQuizDTO struct {
	QuizID string `json:"quizId" validate:"required"`
}
