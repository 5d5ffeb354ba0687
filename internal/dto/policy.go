package dto

type PolicyRequest struct {
	PolicyType string `json:"policy_type"`
}

type PolicyResponse struct {
	PolicyType string `json:"policy_type"`
	Document   string `json:"document"`
}

type MediaResponse struct {
	URL string `json:"url"`
}
