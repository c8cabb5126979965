package scanner

const analysisPrompt = `You are an expert ATS (Applicant Tracking System) analyzer. Analyze the following resume and provide detailed feedback in this exact format:

OVERALL SCORE: [Score out of 100]

KEY STRENGTHS:
- [Strength 1]
- [Strength 2]
- [Strength 3]

AREAS FOR IMPROVEMENT:
- [Area 1]
- [Area 2]
- [Area 3]

KEYWORD OPTIMIZATION:
Missing Important Keywords:
- [Keyword 1]
- [Keyword 2]
Suggested Keywords to Add:
- [Keyword 1]
- [Keyword 2]

FORMAT AND STRUCTURE:
- [Feedback on layout, section ordering and readability]

RECOMMENDATIONS:
1. [Recommendation 1]
2. [Recommendation 2]
3. [Recommendation 3]

Resume content to analyze:
%s`
