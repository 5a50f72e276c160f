package prompts

const defaultVersion = "1.0"

const (
	freeModel    = "gpt-4o-mini"
	premiumModel = "gpt-4o"
)

func defaultTemplates() map[string]map[string]Template {
	return map[string]map[string]Template{
		KindHealthAnalysis: {
			"free": {
				System:      "You are a veterinarian providing basic health analysis. Be concise, practical and calm. Always remind the owner that this is not a substitute for an in-person examination.",
				User:        "Analyze this pet's recent health records and summarize the main findings:\n\n{health_data}",
				Model:       freeModel,
				MaxTokens:   800,
				Temperature: 0.4,
			},
			"premium": {
				System:      "You are an experienced veterinarian providing an in-depth health analysis. Explain trends, likely causes and concrete next steps. Always remind the owner that this is not a substitute for an in-person examination.",
				User:        "Here is the pet profile, the computed health score, detected correlations and recent records. Write a thorough but readable analysis:\n\n{health_data}",
				Model:       premiumModel,
				MaxTokens:   1200,
				Temperature: 0.4,
			},
		},
		KindChatGeneral: {
			"free": {
				System:      "You are a helpful veterinary assistant answering general pet care questions. Keep answers short and recommend a vet visit for anything serious.",
				User:        "{user_message}",
				Model:       freeModel,
				MaxTokens:   600,
				Temperature: 0.5,
			},
			"premium": {
				System:      "You are an experienced veterinary consultant. Give detailed, practical answers tailored to the pet's profile when one is provided. Recommend a vet visit for anything serious.",
				User:        "Pet profile: {pet_profile}\n\nQuestion: {user_message}",
				Model:       premiumModel,
				MaxTokens:   1000,
				Temperature: 0.5,
			},
		},
		KindChatNutrition: {
			"free": {
				System:      "You are a pet nutrition assistant. Give short, safe feeding guidance and flag foods that are toxic to the species.",
				User:        "{user_message}",
				Model:       freeModel,
				MaxTokens:   600,
				Temperature: 0.4,
			},
			"premium": {
				System:      "You are a veterinary nutritionist. Give detailed diet guidance based on the pet's species, age and weight, and flag toxic foods.",
				User:        "Pet profile: {pet_profile}\n\nQuestion: {user_message}",
				Model:       premiumModel,
				MaxTokens:   1000,
				Temperature: 0.4,
			},
		},
		KindChatBehavior: {
			"free": {
				System:      "You are a pet behavior assistant. Suggest simple, positive-reinforcement approaches and recommend a professional for severe problems.",
				User:        "{user_message}",
				Model:       freeModel,
				MaxTokens:   600,
				Temperature: 0.5,
			},
			"premium": {
				System:      "You are an animal behavior consultant. Analyze the described behavior in context of the pet's profile and give a step-by-step plan.",
				User:        "Pet profile: {pet_profile}\n\nQuestion: {user_message}",
				Model:       premiumModel,
				MaxTokens:   1000,
				Temperature: 0.5,
			},
		},
		KindChatEmergency: {
			"free": {
				System:      "You are a veterinary emergency triage assistant. Your first priority is to tell the owner when to go to a clinic immediately. Be direct and brief.",
				User:        "{user_message}",
				Model:       freeModel,
				MaxTokens:   500,
				Temperature: 0.2,
			},
			"premium": {
				System:      "You are a veterinary emergency triage assistant. Your first priority is to tell the owner when to go to a clinic immediately. Give clear first-aid steps for the interim.",
				User:        "Pet profile: {pet_profile}\n\nSituation: {user_message}",
				Model:       premiumModel,
				MaxTokens:   800,
				Temperature: 0.2,
			},
		},
	}
}

func fallbackTemplate(tier string) Template {
	t := Template{
		System:      "You are a professional veterinarian providing consultation. Recommend a vet visit for anything serious.",
		User:        "{user_message}",
		Model:       freeModel,
		MaxTokens:   800,
		Temperature: 0.4,
	}
	if tier == "premium" {
		t.Model = premiumModel
		t.MaxTokens = 1200
	}
	return t
}
